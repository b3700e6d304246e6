// Package lfu implements the least-frequently-used replacement policy.
//
// Blocks are kept in a sorted list by ascending access count. Bumping a count
// removes the block and re-adds it, which places it after every block with
// the same new count; within a count the head is therefore the block least
// recently touched at that count, and it is the eviction victim.
package lfu

import (
	"strings"

	"github.com/IvanBrykalov/cachesim/internal/list"
	"github.com/IvanBrykalov/cachesim/policy"
)

// Policy is an LFU cache of addresses with LRU tie-breaking.
type Policy struct {
	capacity int
	seq      *list.Sorted[*Block]
}

// New returns an empty LFU cache holding at most capacity addresses.
func New(capacity int) (*Policy, error) {
	if err := policy.ValidateCapacity(capacity); err != nil {
		return nil, err
	}
	return &Policy{capacity: capacity, seq: list.NewSortedFunc(byCount, sameAddr)}, nil
}

// Capacity returns the fixed entry limit.
func (p *Policy) Capacity() int { return p.capacity }

// Len returns the number of resident blocks.
func (p *Policy) Len() int { return p.seq.Len() }

// IsFull reports whether the next miss evicts.
func (p *Policy) IsFull() bool { return p.seq.Len() == p.capacity }

// NextToReplace returns the address of the head block.
func (p *Policy) NextToReplace() (string, bool) {
	b, ok := p.seq.Front()
	if !ok {
		return "", false
	}
	return b.addr, true
}

// Contains reports residency without counting an access.
func (p *Policy) Contains(addr string) bool {
	return p.seq.Contains(&Block{addr: addr})
}

// Count returns the access count of a resident address.
func (p *Policy) Count(addr string) (int, bool) {
	n := p.seq.Find(&Block{addr: addr})
	if n == nil {
		return 0, false
	}
	return n.Value().count, true
}

// Access increments the count of a resident addr and re-sorts its block (hit).
// Otherwise it evicts the head block when full and adds a count-1 block (miss).
func (p *Policy) Access(addr string) (bool, error) {
	if err := policy.ValidateAddress(addr); err != nil {
		return false, err
	}
	cand := newBlock(addr)
	if n := p.seq.Find(cand); n != nil {
		b := n.Value()
		// The key changes in place, so the block must leave the list before
		// it can be re-added at its new position.
		b.count++
		p.seq.Remove(b)
		return true, p.seq.Add(b)
	}
	if p.IsFull() {
		p.seq.PopFront()
	}
	return false, p.seq.Add(cand)
}

// String concatenates <addr,count> tokens from least to most frequently
// used, ties from least to most recently touched.
func (p *Policy) String() string {
	var sb strings.Builder
	for b := range p.seq.All() {
		sb.WriteString(b.String())
	}
	return sb.String()
}

var _ policy.Policy = (*Policy)(nil)
