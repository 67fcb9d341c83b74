package linkedlist

import "io"

// Node is one cell of the chain. It owns its payload until it is released
// or extracted.
type Node struct {
	data     interface{}
	behavior Behavior
	next     *Node
	alloc    *Allocator
	linked   bool
	released bool
}

// Value returns the payload, nil once the node was released.
func (n *Node) Value() interface{} {
	return n.data
}

// Next returns the successor, nil for the tail and for detached nodes.
func (n *Node) Next() *Node {
	return n.next
}

func (n *Node) Behavior() Behavior {
	return n.behavior
}

// Print renders the payload with the node's own behavior.
func (n *Node) Print(w io.Writer) {
	n.behavior.Print(w, n.data)
}

// Release frees the payload of a node the caller owns, i.e. one returned
// by ExtractFirst or ExtractLast, and gives it back to its allocator.
// It does nothing on a node that is still part of a list, such as one
// returned by FindFirst, and nothing on a node already released.
func (n *Node) Release() {
	if n == nil || n.linked {
		return
	}
	n.free()
}

func (n *Node) free() {
	if n.released {
		return
	}
	n.linked = false
	n.behavior.Free(&n.data)
	n.released = true
	n.next = nil
	if n.alloc != nil {
		n.alloc.release(n)
	}
}
