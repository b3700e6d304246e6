package cache

import (
	"go.uber.org/zap"

	"github.com/IvanBrykalov/cachesim/policy"
)

// Metrics exposes simulator-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict()
	Size(entries int)
}

// Options configures a Simulator. Zero values are safe except Capacity;
// defaults are applied in New():
//   - zero Policy  => FIFO
//   - nil Metrics  => NoopMetrics
//   - nil Logger   => zap.NewNop()
type Options struct {
	// Capacity is the entry limit of the simulated cache; must be > 0.
	Capacity int

	// Policy selects the replacement rule.
	Policy policy.Kind

	// OnEvict is called with the victim address after every eviction.
	OnEvict func(addr string)
	Metrics Metrics

	// Logger receives creation (Info) and eviction (Debug) records.
	Logger *zap.Logger
}
