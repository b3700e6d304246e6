package list

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/cachesim"
)

// Add keeps ascending order from head to tail.
func TestSorted_Ascending(t *testing.T) {
	t.Parallel()

	s := NewSorted[string]()
	require.NoError(t, s.Add("Mason"))
	require.NoError(t, s.Add("George"))
	require.NoError(t, s.Add("Washington"))

	require.Equal(t, 3, s.Len())
	v, ok := s.Front()
	require.True(t, ok)
	require.Equal(t, "George", v)
	require.Equal(t, "George Mason Washington", s.String())
}

type byLen string

// A tied value lands after every value it ties with.
func TestSorted_TieGoesLast(t *testing.T) {
	t.Parallel()

	s := NewSortedFunc(
		func(a, b byLen) int { return len(a) - len(b) },
		func(a, b byLen) bool { return a == b },
	)
	require.NoError(t, s.Add("1234"))
	require.NoError(t, s.Add("123"))
	require.NoError(t, s.Add("12345"))
	require.Equal(t, "123 1234 12345", s.String())

	require.NoError(t, s.Add("7890"))
	require.Equal(t, "123 1234 7890 12345", s.String())

	// Ties with the head must not jump in front of it.
	require.NoError(t, s.Add("abc"))
	require.Equal(t, "123 abc 1234 7890 12345", s.String())
}

// Nil values are rejected without touching the list.
func TestSorted_NilValue(t *testing.T) {
	t.Parallel()

	s := NewSortedFunc(
		func(a, b *int) int { return *a - *b },
		func(a, b *int) bool { return a == b },
	)
	require.ErrorIs(t, s.Add(nil), cachesim.ErrInvalidArgument)
	require.Equal(t, 0, s.Len())
}

type tagged struct {
	key, seq int
}

// Random inserts: adjacent pairs never decrease, equal keys keep call order.
func TestSorted_RandomInvariant(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	s := NewSortedFunc(
		func(a, b tagged) int { return a.key - b.key },
		func(a, b tagged) bool { return a == b },
	)
	const n = 500
	for i := 0; i < n; i++ {
		require.NoError(t, s.Add(tagged{key: r.Intn(20), seq: i}))
	}
	require.Equal(t, n, s.Len())

	var prev *tagged
	for v := range s.All() {
		if prev != nil {
			require.LessOrEqual(t, prev.key, v.key)
			if prev.key == v.key {
				require.Less(t, prev.seq, v.seq)
			}
		}
		cur := v
		prev = &cur
	}
}

// Remove then Add re-sorts a value whose key changed.
func TestSorted_ReinsertAfterKeyChange(t *testing.T) {
	t.Parallel()

	type blk struct {
		addr  string
		count int
	}
	s := NewSortedFunc(
		func(a, b *blk) int { return a.count - b.count },
		func(a, b *blk) bool { return a.addr == b.addr },
	)
	a, b, c := &blk{"a", 1}, &blk{"b", 1}, &blk{"c", 2}
	for _, x := range []*blk{a, b, c} {
		require.NoError(t, s.Add(x))
	}

	a.count++
	got, ok := s.Remove(&blk{addr: "a"})
	require.True(t, ok)
	require.Same(t, a, got)
	require.NoError(t, s.Add(got))

	var order []string
	for x := range s.All() {
		order = append(order, x.addr)
	}
	require.Equal(t, []string{"b", "c", "a"}, order)
}
