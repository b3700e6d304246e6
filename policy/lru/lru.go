// Package lru implements the least-recently-used replacement policy.
package lru

import (
	"github.com/IvanBrykalov/cachesim/internal/list"
	"github.com/IvanBrykalov/cachesim/policy"
)

// Policy keeps addresses in recency order: the head is least recently used,
// the tail most recently used.
type Policy struct {
	capacity int
	seq      *list.List[string]
}

// New returns an empty LRU cache holding at most capacity addresses.
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

// NextToReplace returns the least recently used address.
func (p *Policy) NextToReplace() (string, bool) { return p.seq.Front() }

// Contains reports residency without marking addr as used.
func (p *Policy) Contains(addr string) bool { return p.seq.Contains(addr) }

// Access promotes a resident addr to most recently used (hit). Otherwise it
// evicts the least recently used address when full and appends addr (miss).
func (p *Policy) Access(addr string) (bool, error) {
	if err := policy.ValidateAddress(addr); err != nil {
		return false, err
	}
	// Addresses are unique, so the single match is unlinked and re-appended
	// as the tail on its existing node.
	if p.seq.MoveToBack(addr) {
		return true, nil
	}
	if p.IsFull() {
		p.seq.PopFront()
	}
	return false, p.seq.PushBack(addr)
}

// String lists addresses from least to most recently used.
func (p *Policy) String() string { return p.seq.String() }

var _ policy.Policy = (*Policy)(nil)
