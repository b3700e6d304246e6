package cache

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IvanBrykalov/cachesim/policy"
)

// Simulator drives one replacement policy and accounts for every access.
// It is not safe for concurrent use; a single goroutine must own it.
type Simulator struct {
	p     policy.Policy
	opt   Options
	log   *zap.Logger
	stats Stats
}

// New constructs a simulator with the provided Options.
// Defaults:
//   - nil Metrics  -> NoopMetrics
//   - nil Logger   -> zap.NewNop()
func New(opt Options) (*Simulator, error) {
	p, err := NewPolicy(opt.Policy, opt.Capacity)
	if err != nil {
		return nil, err
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	log := opt.Logger.With(zap.Stringer("policy", opt.Policy), zap.Int("capacity", opt.Capacity))
	log.Info("simulator created")
	return &Simulator{p: p, opt: opt, log: log}, nil
}

// Access records one access to addr and reports whether it hit.
// An invalid addr returns an error wrapping cachesim.ErrInvalidArgument and
// leaves the policy and the counters untouched.
func (s *Simulator) Access(addr string) (bool, error) {
	if err := policy.ValidateAddress(addr); err != nil {
		return false, err
	}
	// The victim must be read before the access replaces it.
	victim, _ := s.p.NextToReplace()
	full := s.p.IsFull()

	hit, err := s.p.Access(addr)
	if err != nil {
		return false, err
	}

	s.stats.Accesses++
	if hit {
		s.stats.Hits++
		s.opt.Metrics.Hit()
		return true, nil
	}
	s.stats.Misses++
	s.opt.Metrics.Miss()
	if full {
		s.stats.Evictions++
		s.opt.Metrics.Evict()
		s.log.Debug("evicted", zap.String("victim", victim), zap.String("by", addr))
		if s.opt.OnEvict != nil {
			s.opt.OnEvict(victim)
		}
	}
	s.opt.Metrics.Size(s.p.Len())
	return false, nil
}

// Replay feeds every address of addrs to Access in order. It checks ctx
// between accesses and stops at the first invalid address; the returned
// Report then covers the accesses made so far.
func (s *Simulator) Replay(ctx context.Context, addrs iter.Seq[string]) (Report, error) {
	rep := Report{
		RunID:    uuid.New(),
		Policy:   s.opt.Policy,
		Capacity: s.opt.Capacity,
	}
	log := s.log.With(zap.Stringer("run_id", rep.RunID))
	log.Info("replay started")

	start := time.Now()
	before := s.stats
	var err error
	i := 0
	for addr := range addrs {
		if err = ctx.Err(); err != nil {
			break
		}
		if _, err = s.Access(addr); err != nil {
			err = fmt.Errorf("cache: access #%d: %w", i, err)
			break
		}
		i++
	}

	rep.Elapsed = time.Since(start)
	rep.Stats = Stats{
		Accesses:  s.stats.Accesses - before.Accesses,
		Hits:      s.stats.Hits - before.Hits,
		Misses:    s.stats.Misses - before.Misses,
		Evictions: s.stats.Evictions - before.Evictions,
	}
	rep.Contents = s.p.String()
	if err != nil {
		log.Warn("replay stopped", zap.Int("accesses", i), zap.Error(err))
		return rep, err
	}
	log.Info("replay finished",
		zap.Int64("accesses", rep.Stats.Accesses),
		zap.Float64("hit_rate", rep.Stats.HitRate()),
		zap.Duration("elapsed", rep.Elapsed))
	return rep, nil
}

// Stats returns the counters accumulated since New.
func (s *Simulator) Stats() Stats { return s.stats }

// Policy returns the underlying policy for inspection. Accessing it directly
// bypasses the counters.
func (s *Simulator) Policy() policy.Policy { return s.p }

// Kind returns the configured replacement policy kind.
func (s *Simulator) Kind() policy.Kind { return s.opt.Policy }

// Len returns the number of resident addresses.
func (s *Simulator) Len() int { return s.p.Len() }
