// Package policy defines the contract shared by the replacement policies in
// policy/fifo, policy/lru and policy/lfu.
package policy

import (
	"fmt"
	"strings"

	"github.com/IvanBrykalov/cachesim"
)

// Policy is a fixed-capacity cache of addresses with its own replacement rule.
//
// Implementations are not safe for concurrent use; a single goroutine must
// own an instance.
type Policy interface {
	// Capacity is the positive entry limit fixed at construction.
	Capacity() int
	// Len is the number of resident addresses, 0..Capacity.
	Len() int
	// IsFull reports Len() == Capacity().
	IsFull() bool
	// NextToReplace returns the address the next miss would evict,
	// or false when the cache is empty.
	NextToReplace() (string, bool)
	// Access records one access to addr and reports whether it was a hit.
	// A miss at full capacity evicts NextToReplace(). An empty addr fails
	// with an error wrapping cachesim.ErrInvalidArgument and changes nothing.
	Access(addr string) (hit bool, err error)
	// Contains reports whether addr is resident without counting an access.
	Contains(addr string) bool
	// String renders the resident entries in policy order (eviction candidate
	// first); "" when empty.
	String() string
}

// Kind names one of the built-in replacement policies.
type Kind uint8

const (
	// FIFO evicts in arrival order; hits do not reorder.
	FIFO Kind = iota
	// LRU evicts the least recently accessed address.
	LRU
	// LFU evicts the least frequently accessed address, least recently
	// touched first among equal counts.
	LFU
)

// Kinds lists every built-in policy kind.
var Kinds = []Kind{FIFO, LRU, LFU}

func (k Kind) String() string {
	switch k {
	case FIFO:
		return "fifo"
	case LRU:
		return "lru"
	case LFU:
		return "lfu"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a case-insensitive name ("fifo", "lru", "lfu") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	case "lfu":
		return LFU, nil
	}
	return 0, fmt.Errorf("%w: unknown policy %q (use fifo, lru or lfu)", cachesim.ErrInvalidArgument, s)
}

// ValidateCapacity rejects non-positive capacities.
func ValidateCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be > 0 but %d was requested",
			cachesim.ErrInvalidArgument, capacity)
	}
	return nil
}

// ValidateAddress rejects the empty address.
func ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty address", cachesim.ErrInvalidArgument)
	}
	return nil
}
