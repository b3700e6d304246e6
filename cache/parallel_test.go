package cache

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/cachesim/policy"
)

// One simulator per goroutine over a shared read-only trace.
// Should pass under `-race`; each run must match a sequential replay.
func TestSimulator_ParallelReplays(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	trace := make([]string, 20_000)
	for i := range trace {
		trace[i] = "k:" + strconv.Itoa(r.Intn(300))
	}

	sequential := map[policy.Kind]Stats{}
	for _, k := range policy.Kinds {
		s, err := New(Options{Capacity: 64, Policy: k})
		require.NoError(t, err)
		rep, err := s.Replay(context.Background(), slices.Values(trace))
		require.NoError(t, err)
		sequential[k] = rep.Stats
	}

	reports := make([]Report, 4*len(policy.Kinds))
	g, ctx := errgroup.WithContext(context.Background())
	for i := range reports {
		kind := policy.Kinds[i%len(policy.Kinds)]
		g.Go(func() error {
			s, err := New(Options{Capacity: 64, Policy: kind})
			if err != nil {
				return err
			}
			rep, err := s.Replay(ctx, slices.Values(trace))
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			reports[i] = rep
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, rep := range reports {
		require.Equal(t, sequential[rep.Policy], rep.Stats, rep.Policy.String())
	}
}
