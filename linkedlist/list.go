package linkedlist

import (
	"bytes"
	"io"
	"os"

	"github.com/emirpasic/gods/containers"

	"sllist/log"
)

var _ containers.Container = (*List)(nil)

// List is a singly linked chain of nodes, addressed through its head.
// The zero value is an empty list using NewConfig().
type List struct {
	head   *Node
	config *Config
	alloc  *Allocator
	logger log.Logger
}

// New creates an empty list with its own allocator sized by config.MaxNodes.
func New(config *Config) *List {
	return NewWithAllocator(config, nil)
}

// NewWithAllocator creates an empty list whose nodes come from alloc.
func NewWithAllocator(config *Config, alloc *Allocator) *List {
	l := &List{config: config, alloc: alloc}
	l.init()
	return l
}

func (l *List) init() {
	if l.config == nil {
		l.config = NewConfig()
	}
	if l.config.Name == "" {
		l.config.Name = defaultName
	}
	if l.alloc == nil {
		l.alloc = NewAllocator(l.config.Name, l.config.MaxNodes)
	}
	if l.logger == nil {
		logger := l.config.Logger
		if logger == nil {
			logger = log.Default()
		}
		l.logger = logger.WithField("list", l.config.Name)
	}
}

// Allocator returns the allocator new nodes of l come from.
func (l *List) Allocator() *Allocator {
	l.init()
	return l.alloc
}

// Destroy releases every node of the chain, suffix first, and leaves l empty.
func (l *List) Destroy() {
	l.init()
	// reverse in place, then release from the old tail
	var prev *Node
	for n := l.head; n != nil; {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	l.head = nil

	count := 0
	for n := prev; n != nil; count++ {
		next := n.next
		n.free()
		n = next
	}
	if count > 0 {
		l.observe(opDestroy, resultOK)
		l.logger.Debug("destroyed %d nodes", count)
	}
}

// Clear is Destroy under the name containers.Container expects.
func (l *List) Clear() {
	l.Destroy()
}

func (l *List) Front() *Node {
	return l.head
}

// Back walks to the tail.
func (l *List) Back() *Node {
	if l.head == nil {
		return nil
	}
	n := l.head
	for n.next != nil {
		n = n.next
	}
	return n
}

func (l *List) Empty() bool {
	return l.head == nil
}

// Size counts the nodes; it is O(n) on every call.
func (l *List) Size() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// Values returns the payloads from head to tail.
func (l *List) Values() []interface{} {
	values := make([]interface{}, 0)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.data)
	}
	return values
}

func (l *List) String() string {
	buf := bytes.NewBufferString("LinkedList\n")
	for n := l.head; n != nil; n = n.next {
		n.Print(buf)
		if n.next != nil {
			buf.WriteString(", ")
		}
	}
	return buf.String()
}

// Print writes every payload to the configured output, then a line break.
func (l *List) Print() {
	l.init()
	l.Fprint(l.output())
}

// PrintWithSeparator is Print with separator between consecutive payloads.
// An empty separator falls back to Config.Separator.
func (l *List) PrintWithSeparator(separator string) {
	l.init()
	l.FprintWithSeparator(l.output(), separator)
}

func (l *List) Fprint(w io.Writer) {
	for n := l.head; n != nil; n = n.next {
		n.Print(w)
	}
	io.WriteString(w, "\n")
}

func (l *List) FprintWithSeparator(w io.Writer, separator string) {
	if separator == "" {
		separator = l.separator()
	}
	for n := l.head; n != nil; n = n.next {
		n.Print(w)
		if n.next != nil {
			io.WriteString(w, separator)
		}
	}
	io.WriteString(w, "\n")
}

func (l *List) output() io.Writer {
	if l.config.Output != nil {
		return l.config.Output
	}
	return os.Stdout
}

func (l *List) separator() string {
	if l.config != nil && l.config.Separator != "" {
		return l.config.Separator
	}
	return DefaultSeparator
}
