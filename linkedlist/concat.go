package linkedlist

import "fmt"

// Concat splices the nodes of other onto the tail of l without copying them.
//
// After a successful call the nodes belong to l only: other is reset to an
// empty list, so tearing it down cannot release nodes l still reaches.
// Nodes keep their allocator, so quota accounting follows them. An empty
// other is a no-op.
func (l *List) Concat(other *List) error {
	l.init()
	if other == nil || other.head == nil {
		return nil
	}
	if other == l || other.head == l.head {
		l.observe(opConcat, resultInvalid)
		return fmt.Errorf("%s: %w", opConcat, ErrSelfConcat)
	}

	if tail := l.Back(); tail == nil {
		l.head = other.head
	} else {
		tail.next = other.head
	}
	other.head = nil
	l.observe(opConcat, resultOK)
	return nil
}
