package linkedlist

// RemoveFirst frees the first node whose payload equals target and reports
// whether there was one. cmp is called as cmp(payload, target).
func (l *List) RemoveFirst(target interface{}, cmp Comparator) bool {
	l.init()
	return l.release(opRemoveFirst, target, l.unlink(l.scanFirst(equalsTarget(target, cmp))))
}

// RemoveLast frees the last node whose payload equals target.
func (l *List) RemoveLast(target interface{}, cmp Comparator) bool {
	l.init()
	return l.release(opRemoveLast, target, l.unlink(l.scanLast(equalsTarget(target, cmp))))
}

// RemoveAll frees every node whose payload equals target and returns how
// many were removed.
func (l *List) RemoveAll(target interface{}, cmp Comparator) int {
	l.init()
	matches := equalsTarget(target, cmp)
	count := 0
	for {
		n := l.unlink(l.scanFirst(matches))
		if n == nil {
			break
		}
		n.free()
		count++
	}
	if count == 0 {
		l.observe(opRemoveAll, resultNotFound)
		l.logger.Debug("%s: %v not found", opRemoveAll, target)
	} else {
		l.observe(opRemoveAll, resultOK)
	}
	return count
}

// ExtractFirst detaches the first node whose payload equals target and
// returns it without freeing it; the caller owns it from now on and may
// call Release on it. The returned node is a single node: its Next is nil
// and the rest of the chain stays in l. It returns nil when nothing matches.
func (l *List) ExtractFirst(target interface{}, cmp Comparator) *Node {
	l.init()
	return l.extract(opExtractFirst, target, l.unlink(l.scanFirst(equalsTarget(target, cmp))))
}

// ExtractLast is ExtractFirst for the last occurrence of target.
func (l *List) ExtractLast(target interface{}, cmp Comparator) *Node {
	l.init()
	return l.extract(opExtractLast, target, l.unlink(l.scanLast(equalsTarget(target, cmp))))
}

// unlink takes match out of the chain. The detached node keeps no link into l.
func (l *List) unlink(prev, match *Node) *Node {
	if match == nil {
		return nil
	}
	if prev == nil {
		l.head = match.next
	} else {
		prev.next = match.next
	}
	match.next = nil
	match.linked = false
	return match
}

func (l *List) release(op string, target interface{}, n *Node) bool {
	if n == nil {
		l.observe(op, resultNotFound)
		l.logger.Debug("%s: %v not found", op, target)
		return false
	}
	n.free()
	l.observe(op, resultOK)
	return true
}

func (l *List) extract(op string, target interface{}, n *Node) *Node {
	if n == nil {
		l.observe(op, resultNotFound)
		l.logger.Debug("%s: %v not found", op, target)
		return nil
	}
	l.observe(op, resultOK)
	return n
}
