package cache

import (
	"fmt"

	"github.com/IvanBrykalov/cachesim"
	"github.com/IvanBrykalov/cachesim/policy"
	"github.com/IvanBrykalov/cachesim/policy/fifo"
	"github.com/IvanBrykalov/cachesim/policy/lfu"
	"github.com/IvanBrykalov/cachesim/policy/lru"
)

// NewPolicy builds an empty policy of the given kind.
func NewPolicy(kind policy.Kind, capacity int) (policy.Policy, error) {
	switch kind {
	case policy.FIFO:
		return fifo.New(capacity)
	case policy.LRU:
		return lru.New(capacity)
	case policy.LFU:
		return lfu.New(capacity)
	}
	return nil, fmt.Errorf("%w: unknown policy kind %d", cachesim.ErrInvalidArgument, uint8(kind))
}
