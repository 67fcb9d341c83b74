package linkedlist

import (
	"fmt"
	"sync/atomic"
)

// Allocator hands out nodes and enforces an optional quota on how many of
// them may be alive at the same time. One Allocator may back several lists.
type Allocator struct {
	Name  string
	limit int64 // 0 means unlimited
	live  int64
}

func NewAllocator(name string, limit int64) *Allocator {
	if name == "" {
		name = defaultName
	}
	if limit < 0 {
		limit = 0
	}
	return &Allocator{Name: name, limit: limit}
}

func (a *Allocator) Limit() int64 {
	return a.limit
}

// Live returns the number of nodes allocated and not yet released.
func (a *Allocator) Live() int64 {
	return atomic.LoadInt64(&a.live)
}

// alloc never mutates anything but its own counter; on failure no node exists.
func (a *Allocator) alloc(data interface{}, behavior Behavior, next *Node) (*Node, error) {
	for {
		live := atomic.LoadInt64(&a.live)
		if a.limit > 0 && live >= a.limit {
			return nil, fmt.Errorf("allocator %s: %d of %d nodes in use: %w", a.Name, live, a.limit, ErrAllocation)
		}
		if atomic.CompareAndSwapInt64(&a.live, live, live+1) {
			break
		}
	}
	liveNodesGauge.WithLabelValues(a.Name).Inc()
	return &Node{data: data, behavior: behavior, next: next, alloc: a, linked: true}, nil
}

func (a *Allocator) release(*Node) {
	atomic.AddInt64(&a.live, -1)
	liveNodesGauge.WithLabelValues(a.Name).Dec()
}
