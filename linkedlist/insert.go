package linkedlist

import "fmt"

// PushFront makes a new node holding data the head of l.
func (l *List) PushFront(data interface{}, behavior Behavior) error {
	l.init()
	if err := l.checkBehavior(opPushFront, behavior); err != nil {
		return err
	}
	return l.linkFront(opPushFront, data, behavior)
}

// PushBack walks to the tail and links a new node after it.
func (l *List) PushBack(data interface{}, behavior Behavior) error {
	l.init()
	if err := l.checkBehavior(opPushBack, behavior); err != nil {
		return err
	}
	return l.linkBack(opPushBack, data, behavior)
}

// InsertAfterFirst links data right after the first payload equal to reference.
//
// A nil reference inserts at the front of an empty list and at the back of
// a non-empty one. When reference is not found ErrReferenceNotFound is
// returned and l is left untouched. cmp is called as cmp(reference, payload)
// and must be able to compare every payload of l.
func (l *List) InsertAfterFirst(data interface{}, behavior Behavior, reference interface{}, cmp Comparator) error {
	return l.insertRelative(opInsertAfterFirst, data, behavior, reference, cmp, false, true)
}

// InsertBeforeFirst links data right before the first payload equal to
// reference. See InsertAfterFirst for the nil reference and not found rules.
func (l *List) InsertBeforeFirst(data interface{}, behavior Behavior, reference interface{}, cmp Comparator) error {
	return l.insertRelative(opInsertBeforeFirst, data, behavior, reference, cmp, false, false)
}

// InsertAfterLast links data right after the last payload equal to reference.
func (l *List) InsertAfterLast(data interface{}, behavior Behavior, reference interface{}, cmp Comparator) error {
	return l.insertRelative(opInsertAfterLast, data, behavior, reference, cmp, true, true)
}

// InsertBeforeLast links data right before the last payload equal to reference.
func (l *List) InsertBeforeLast(data interface{}, behavior Behavior, reference interface{}, cmp Comparator) error {
	return l.insertRelative(opInsertBeforeLast, data, behavior, reference, cmp, true, false)
}

func (l *List) insertRelative(op string, data interface{}, behavior Behavior, reference interface{}, cmp Comparator, last, after bool) error {
	l.init()
	if err := l.checkBehavior(op, behavior); err != nil {
		return err
	}

	if reference == nil {
		if l.head == nil {
			return l.linkFront(op, data, behavior)
		}
		return l.linkBack(op, data, behavior)
	}

	equalsReference := func(payload interface{}) bool {
		return cmp(reference, payload) == 0
	}
	var prev, match *Node
	if last {
		prev, match = l.scanLast(equalsReference)
	} else {
		prev, match = l.scanFirst(equalsReference)
	}
	if match == nil {
		l.observe(op, resultNotFound)
		l.logger.Warn("%s: reference %v not found", op, reference)
		return fmt.Errorf("%s %v: %w", op, reference, ErrReferenceNotFound)
	}

	switch {
	case after:
		return l.linkAfter(op, match, data, behavior)
	case prev == nil:
		// the reference is the head
		return l.linkFront(op, data, behavior)
	default:
		return l.linkAfter(op, prev, data, behavior)
	}
}

func (l *List) checkBehavior(op string, behavior Behavior) error {
	if behavior == nil {
		l.observe(op, resultInvalid)
		return fmt.Errorf("%s: %w", op, ErrNilBehavior)
	}
	return nil
}

// allocate is always the last step before linking, so a failure leaves l as it was.
func (l *List) allocate(op string, data interface{}, behavior Behavior, next *Node) (*Node, error) {
	n, err := l.alloc.alloc(data, behavior, next)
	if err != nil {
		l.observe(op, resultAllocFailed)
		l.logger.Error("%s: %v", op, err)
		return nil, err
	}
	return n, nil
}

func (l *List) linkFront(op string, data interface{}, behavior Behavior) error {
	n, err := l.allocate(op, data, behavior, l.head)
	if err != nil {
		return err
	}
	l.head = n
	l.observe(op, resultOK)
	return nil
}

func (l *List) linkBack(op string, data interface{}, behavior Behavior) error {
	tail := l.Back()
	if tail == nil {
		return l.linkFront(op, data, behavior)
	}
	return l.linkAfter(op, tail, data, behavior)
}

func (l *List) linkAfter(op string, at *Node, data interface{}, behavior Behavior) error {
	n, err := l.allocate(op, data, behavior, at.next)
	if err != nil {
		return err
	}
	at.next = n
	l.observe(op, resultOK)
	return nil
}
