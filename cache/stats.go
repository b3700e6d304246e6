package cache

import (
	"time"

	"github.com/google/uuid"

	"github.com/IvanBrykalov/cachesim/policy"
)

// Stats counts what a Simulator has seen. Accesses == Hits + Misses.
type Stats struct {
	Accesses  int64
	Hits      int64
	Misses    int64
	Evictions int64
}

// HitRate returns Hits/Accesses, or 0 before the first access.
func (s Stats) HitRate() float64 {
	if s.Accesses == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Accesses)
}

// Report summarises one Replay.
type Report struct {
	// RunID tags the replay in logs and output.
	RunID    uuid.UUID
	Policy   policy.Kind
	Capacity int
	// Stats covers only the accesses made by this replay.
	Stats   Stats
	Elapsed time.Duration
	// Contents is the policy rendering after the last access.
	Contents string
}
