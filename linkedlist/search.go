package linkedlist

// FindFirst returns the first node whose payload equals target, or nil.
// cmp is called as cmp(payload, target).
func (l *List) FindFirst(target interface{}, cmp Comparator) *Node {
	_, match := l.scanFirst(equalsTarget(target, cmp))
	return match
}

// FindLast scans the whole chain and returns the last match, or nil.
func (l *List) FindLast(target interface{}, cmp Comparator) *Node {
	_, match := l.scanLast(equalsTarget(target, cmp))
	return match
}

func equalsTarget(target interface{}, cmp Comparator) func(interface{}) bool {
	return func(payload interface{}) bool {
		return cmp(payload, target) == 0
	}
}

// scanFirst returns the first matching node and its predecessor,
// prev is nil when the match is the head.
func (l *List) scanFirst(matches func(interface{}) bool) (prev, match *Node) {
	var p *Node
	for n := l.head; n != nil; p, n = n, n.next {
		if matches(n.data) {
			return p, n
		}
	}
	return nil, nil
}

func (l *List) scanLast(matches func(interface{}) bool) (prev, match *Node) {
	var p *Node
	for n := l.head; n != nil; p, n = n, n.next {
		if matches(n.data) {
			prev, match = p, n
		}
	}
	return prev, match
}
