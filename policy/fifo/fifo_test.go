package fifo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/cachesim"
)

func access(t *testing.T, p *Policy, addrs ...string) []bool {
	t.Helper()
	verdicts := make([]bool, 0, len(addrs))
	for _, a := range addrs {
		hit, err := p.Access(a)
		require.NoError(t, err)
		verdicts = append(verdicts, hit)
	}
	return verdicts
}

// [x y z x w] with capacity 3: only the second x hits, x is still evicted first.
func TestFIFO_Scenario(t *testing.T) {
	t.Parallel()

	p, err := New(3)
	require.NoError(t, err)

	got := access(t, p, "x", "y", "z", "x", "w")
	require.Equal(t, []bool{false, false, false, true, false}, got)
	require.Equal(t, "y z w", p.String())
}

// The (C+1)-th distinct address evicts the first one and size stays C.
func TestFIFO_EvictsOldest(t *testing.T) {
	t.Parallel()

	const capacity = 4
	p, err := New(capacity)
	require.NoError(t, err)

	access(t, p, "a1", "a2", "a3", "a4")
	require.True(t, p.IsFull())
	victim, ok := p.NextToReplace()
	require.True(t, ok)
	require.Equal(t, "a1", victim)

	access(t, p, "a5")
	require.False(t, p.Contains("a1"))
	require.Equal(t, capacity, p.Len())
	require.Equal(t, capacity, p.Capacity())
	victim, _ = p.NextToReplace()
	require.Equal(t, "a2", victim)
}

// Hits never reorder.
func TestFIFO_HitDoesNotPromote(t *testing.T) {
	t.Parallel()

	p, err := New(2)
	require.NoError(t, err)
	access(t, p, "a", "b", "a", "a")
	victim, _ := p.NextToReplace()
	require.Equal(t, "a", victim)
	require.Equal(t, "a b", p.String())
}

// Empty cache: nothing to replace, empty rendering.
func TestFIFO_Empty(t *testing.T) {
	t.Parallel()

	p, err := New(1)
	require.NoError(t, err)
	_, ok := p.NextToReplace()
	require.False(t, ok)
	require.Equal(t, "", p.String())
	require.False(t, p.IsFull())
}

// Invalid input is rejected without side effects.
func TestFIFO_InvalidArguments(t *testing.T) {
	t.Parallel()

	p, err := New(0)
	require.Nil(t, p)
	require.ErrorIs(t, err, cachesim.ErrInvalidArgument)

	p, err = New(2)
	require.NoError(t, err)
	access(t, p, "a", "b")
	_, err = p.Access("")
	require.ErrorIs(t, err, cachesim.ErrInvalidArgument)
	require.Equal(t, "a b", p.String())
	require.Equal(t, 2, p.Len())
}
