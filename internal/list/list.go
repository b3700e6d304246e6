// Package list implements the singly linked list every replacement policy is
// built on, plus a sorted specialization.
//
// The list keeps only a head reference: length and tail are found by
// traversal. Relocation operations splice existing nodes, so the node that
// held a value before a move is the node that holds it afterwards.
//
// Not safe for concurrent use.
package list

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/IvanBrykalov/cachesim"
)

// List is a singly linked list of non-nil values of type T.
// Build one with New or NewFunc; the zero value has no equality function.
type List[T any] struct {
	head  *Node[T]
	equal func(a, b T) bool
}

// New returns an empty list that matches values with ==.
func New[T comparable]() *List[T] {
	return NewFunc(func(a, b T) bool { return a == b })
}

// NewFunc returns an empty list that matches values with equal.
// equal is called as equal(stored, argument).
func NewFunc[T any](equal func(a, b T) bool) *List[T] {
	return &List[T]{equal: equal}
}

// Len counts the linked values. O(n).
func (l *List[T]) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

// Front returns the head value without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.val, true
}

// Back returns the tail value without removing it. O(n).
func (l *List[T]) Back() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.tail().val, true
}

// PushFront inserts v as the new head. O(1).
func (l *List[T]) PushFront(v T) error {
	if isNil(v) {
		return errNilValue("PushFront")
	}
	l.head = &Node[T]{val: v, next: l.head}
	return nil
}

// PushBack appends v as the new tail. O(n).
func (l *List[T]) PushBack(v T) error {
	if isNil(v) {
		return errNilValue("PushBack")
	}
	n := &Node[T]{val: v}
	if l.head == nil {
		l.head = n
		return nil
	}
	l.tail().next = n
	return nil
}

// PopFront removes and returns the head value.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	n.next = nil
	return n.val, true
}

// PopBack removes and returns the tail value. O(n).
func (l *List[T]) PopBack() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	var prev *Node[T]
	cur := l.head
	for cur.next != nil {
		prev, cur = cur, cur.next
	}
	if prev == nil {
		l.head = nil
	} else {
		prev.next = nil
	}
	return cur.val, true
}

// Remove unlinks the first node matching v and returns the value it held
// (the stored value, which may differ from v under a custom equality).
func (l *List[T]) Remove(v T) (T, bool) {
	prev, n := l.find(v)
	if n == nil {
		var zero T
		return zero, false
	}
	l.unlink(prev, n)
	return n.val, true
}

// Index returns the position of the first value matching v, or -1.
func (l *List[T]) Index(v T) int {
	if isNil(v) {
		return -1
	}
	i := 0
	for c := l.head; c != nil; c = c.next {
		if l.equal(c.val, v) {
			return i
		}
		i++
	}
	return -1
}

// Find returns the first node matching v, or nil.
// Intended for policies and tests that need to observe node identity.
func (l *List[T]) Find(v T) *Node[T] {
	_, n := l.find(v)
	return n
}

// Contains reports whether some value matches v.
func (l *List[T]) Contains(v T) bool { return l.Find(v) != nil }

// MoveToFront relinks the first node matching v as the head.
// Returns false if v is nil or absent; true otherwise, including when the
// node already is the head.
func (l *List[T]) MoveToFront(v T) bool {
	prev, n := l.find(v)
	if n == nil {
		return false
	}
	if prev == nil {
		return true
	}
	prev.next = n.next
	n.next = l.head
	l.head = n
	return true
}

// MoveForward swaps the first node matching v with its predecessor.
// A match at the head is left in place and reported as true.
func (l *List[T]) MoveForward(v T) bool {
	if isNil(v) {
		return false
	}
	var pp, prev *Node[T]
	for n := l.head; n != nil; pp, prev, n = prev, n, n.next {
		if !l.equal(n.val, v) {
			continue
		}
		if prev == nil {
			return true
		}
		// pp -> prev -> n -> x  becomes  pp -> n -> prev -> x
		prev.next = n.next
		n.next = prev
		if pp == nil {
			l.head = n
		} else {
			pp.next = n
		}
		return true
	}
	return false
}

// MoveToBack relinks the last node matching v as the tail.
// Only the match closest to the tail moves when duplicates exist.
func (l *List[T]) MoveToBack(v T) bool {
	if isNil(v) {
		return false
	}
	var (
		prev, tail   *Node[T]
		match, mprev *Node[T]
	)
	for n := l.head; n != nil; prev, n = n, n.next {
		if l.equal(n.val, v) {
			match, mprev = n, prev
		}
		tail = n
	}
	if match == nil {
		return false
	}
	if match == tail {
		return true
	}
	l.unlink(mprev, match)
	tail.next = match
	return true
}

// MoveBackward swaps the first node matching v with its successor.
// A match at the tail is left in place and reported as true.
func (l *List[T]) MoveBackward(v T) bool {
	prev, n := l.find(v)
	if n == nil {
		return false
	}
	succ := n.next
	if succ == nil {
		return true
	}
	// prev -> n -> succ -> x  becomes  prev -> succ -> n -> x
	n.next = succ.next
	succ.next = n
	if prev == nil {
		l.head = succ
	} else {
		prev.next = succ
	}
	return true
}

// Clear drops every node.
func (l *List[T]) Clear() { l.head = nil }

// All yields the values from head to tail. Each range starts over from the
// current head. Mutating the list while ranging gives undefined results.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// String joins the values head to tail with single spaces.
// An empty list renders as "".
func (l *List[T]) String() string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.val)
	}
	return b.String()
}

// ---- internals ----

// find returns the first node matching v and its predecessor (nil at head).
func (l *List[T]) find(v T) (prev, n *Node[T]) {
	if isNil(v) {
		return nil, nil
	}
	for n = l.head; n != nil; prev, n = n, n.next {
		if l.equal(n.val, v) {
			return prev, n
		}
	}
	return nil, nil
}

// unlink detaches n given its predecessor prev (nil when n is the head).
func (l *List[T]) unlink(prev, n *Node[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	n.next = nil
}

func (l *List[T]) tail() *Node[T] {
	n := l.head
	for n != nil && n.next != nil {
		n = n.next
	}
	return n
}

// isNil reports whether v is a nil interface, pointer, map, slice, func or
// channel. Such values may not be stored.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func errNilValue(op string) error {
	return fmt.Errorf("%w: list.%s: nil value", cachesim.ErrInvalidArgument, op)
}
