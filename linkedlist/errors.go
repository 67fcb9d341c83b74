package linkedlist

import "errors"

var (
	// ErrAllocation is returned when the allocator has no node left to hand out.
	ErrAllocation = errors.New("linkedlist: node allocation failed")

	// ErrReferenceNotFound is returned by the reference relative insertions.
	ErrReferenceNotFound = errors.New("linkedlist: reference not found")

	ErrNilBehavior = errors.New("linkedlist: behavior is nil")

	ErrSelfConcat = errors.New("linkedlist: cannot concatenate a list with itself")
)
