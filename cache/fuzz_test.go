package cache

import (
	"strings"
	"testing"

	"github.com/IvanBrykalov/cachesim/policy"
)

// Fuzz arbitrary space-separated traces through every policy.
// Guards against panics and checks the accounting invariants.
func FuzzSimulator_Replay(f *testing.F) {
	f.Add("a b a c", uint8(2))
	f.Add("x y z x w", uint8(3))
	f.Add("αβγ δ αβγ", uint8(1))
	f.Add("", uint8(0))

	f.Fuzz(func(t *testing.T, line string, c uint8) {
		const limit = 1 << 12
		if len(line) > limit {
			line = line[:limit]
		}
		capacity := int(c%16) + 1
		addrs := strings.Fields(line)

		for _, kind := range policy.Kinds {
			var evicted int64
			s, err := New(Options{
				Capacity: capacity,
				Policy:   kind,
				OnEvict:  func(string) { evicted++ },
			})
			if err != nil {
				t.Fatal(err)
			}
			for _, a := range addrs {
				hit, err := s.Access(a)
				if err != nil {
					t.Fatalf("%s: Access(%q): %v", kind, a, err)
				}
				// A hit leaves the address resident; so does a miss.
				if !s.Policy().Contains(a) {
					t.Fatalf("%s: %q not resident after access (hit=%v)", kind, a, hit)
				}
				if s.Len() > capacity {
					t.Fatalf("%s: len %d exceeds capacity %d", kind, s.Len(), capacity)
				}
			}
			st := s.Stats()
			if st.Hits+st.Misses != st.Accesses || st.Accesses != int64(len(addrs)) {
				t.Fatalf("%s: inconsistent stats %+v", kind, st)
			}
			if st.Evictions != evicted || int64(s.Len()) != st.Misses-st.Evictions {
				t.Fatalf("%s: evictions %d, OnEvict %d, len %d, stats %+v", kind, st.Evictions, evicted, s.Len(), st)
			}
		}
	})
}
