// Package fifo implements the first-in, first-out replacement policy.
package fifo

import (
	"github.com/IvanBrykalov/cachesim/internal/list"
	"github.com/IvanBrykalov/cachesim/policy"
)

// Policy keeps addresses in arrival order, oldest at the head.
// A hit never reorders; a miss at capacity evicts the head.
type Policy struct {
	capacity int
	seq      *list.List[string]
}

// New returns an empty FIFO cache holding at most capacity addresses.
func New(capacity int) (*Policy, error) {
	if err := policy.ValidateCapacity(capacity); err != nil {
		return nil, err
	}
	return &Policy{capacity: capacity, seq: list.New[string]()}, nil
}

// Capacity returns the fixed entry limit.
func (p *Policy) Capacity() int { return p.capacity }

// Len returns the number of resident addresses.
func (p *Policy) Len() int { return p.seq.Len() }

// IsFull reports whether the next miss evicts.
func (p *Policy) IsFull() bool { return p.seq.Len() == p.capacity }

// NextToReplace returns the oldest resident address.
func (p *Policy) NextToReplace() (string, bool) { return p.seq.Front() }

// Contains reports residency without affecting order.
func (p *Policy) Contains(addr string) bool { return p.seq.Contains(addr) }

// Access reports a hit if addr is resident. On a miss it evicts the oldest
// address when full and appends addr.
func (p *Policy) Access(addr string) (bool, error) {
	if err := policy.ValidateAddress(addr); err != nil {
		return false, err
	}
	if p.seq.Contains(addr) {
		return true, nil
	}
	if p.IsFull() {
		p.seq.PopFront()
	}
	return false, p.seq.PushBack(addr)
}

// String lists addresses from first in to last in.
func (p *Policy) String() string { return p.seq.String() }

var _ policy.Policy = (*Policy)(nil)
