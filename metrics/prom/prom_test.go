package prom

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/cachesim/cache"
	"github.com/IvanBrykalov/cachesim/policy"
)

// A replay through the simulator lands in the exported series.
func TestAdapter_Replay(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := New(reg, "cachesim", "test", prometheus.Labels{"policy": "lru"})
	require.NoError(t, err)

	s, err := cache.New(cache.Options{Capacity: 2, Policy: policy.LRU, Metrics: m})
	require.NoError(t, err)
	for _, a := range []string{"a", "b", "a", "c"} {
		_, err := s.Access(a)
		require.NoError(t, err)
	}

	require.Equal(t, 1.0, testutil.ToFloat64(m.hits))
	require.Equal(t, 3.0, testutil.ToFloat64(m.misses))
	require.Equal(t, 1.0, testutil.ToFloat64(m.evicts))

	want := `
# HELP cachesim_test_size_entries Number of resident addresses
# TYPE cachesim_test_size_entries gauge
cachesim_test_size_entries{policy="lru"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "cachesim_test_size_entries"))
}

// Two adapters share a registry when their const labels differ.
func TestAdapter_DistinctLabels(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	for _, k := range policy.Kinds {
		_, err := New(reg, "cachesim", "", prometheus.Labels{"policy": k.String()})
		require.NoError(t, err)
	}
	_, err := New(reg, "cachesim", "", prometheus.Labels{"policy": "lru"})
	require.Error(t, err)

	n, err := testutil.GatherAndCount(reg, "cachesim_hits_total")
	require.NoError(t, err)
	require.Equal(t, len(policy.Kinds), n)
}
