package list

import "cmp"

// Sorted is a List kept in non-decreasing order under compare.
// Values that compare equal keep insertion order: Add places a new value
// after every value it ties with.
//
// Reads and relocations of the embedded List remain available. Relocating,
// or mutating a stored value's sort key in place, can break the order; a
// caller that changes a key must Remove the value and Add it back.
type Sorted[T any] struct {
	List[T]
	compare func(a, b T) int
}

// NewSorted returns an empty sorted list over an ordered type.
func NewSorted[T cmp.Ordered]() *Sorted[T] {
	return NewSortedFunc(cmp.Compare[T], func(a, b T) bool { return a == b })
}

// NewSortedFunc returns an empty sorted list that orders with compare and
// matches values (for Find, Remove, Index and relocations) with equal.
// The two need not agree: LFU orders blocks by count but matches by address.
func NewSortedFunc[T any](compare func(a, b T) int, equal func(a, b T) bool) *Sorted[T] {
	return &Sorted[T]{
		List:    List[T]{equal: equal},
		compare: compare,
	}
}

// Add inserts v before the first value strictly greater than v. O(n).
func (s *Sorted[T]) Add(v T) error {
	if isNil(v) {
		return errNilValue("Add")
	}
	n := &Node[T]{val: v}
	if s.head == nil || s.compare(s.head.val, v) > 0 {
		n.next = s.head
		s.head = n
		return nil
	}
	cur := s.head
	for cur.next != nil && s.compare(cur.next.val, v) <= 0 {
		cur = cur.next
	}
	n.next = cur.next
	cur.next = n
	return nil
}
