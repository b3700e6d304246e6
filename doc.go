// Package cachesim simulates address-access caching under interchangeable
// replacement policies (FIFO, LRU, LFU).
//
// Design
//
//   - Storage: every policy is layered over a hand-rolled singly linked list
//     (internal/list). The list has no tail pointer and no cached length; its
//     relocation operations (move to front/back, move one step forward/backward)
//     splice existing nodes and never allocate a replacement node, so a node's
//     identity survives any move.
//
//   - Ordering: internal/list.Sorted keeps values ascending under a comparator;
//     a new value lands after all values it ties with. LFU uses it to keep
//     blocks ordered by access count, least recently touched first within a
//     count.
//
//   - Policies: policy/fifo, policy/lru and policy/lfu implement the
//     policy.Policy contract. Each variant owns its sequence; there is no shared
//     base type. cache.NewPolicy dispatches over the closed set of kinds.
//
//   - Simulation: cache.Simulator drives one policy, counts hits, misses and
//     evictions, reports them to a Metrics sink (see metrics/prom) and calls
//     Options.OnEvict for every victim. Replay runs a whole trace.
//
//   - Errors: invalid arguments (empty address, nil value, non-positive
//     capacity) wrap ErrInvalidArgument. Not-found is never an error; it is
//     reported through comma-ok results, -1 indexes or false.
//
// Basic usage
//
//	sim, err := cache.New(cache.Options{Capacity: 2, Policy: policy.LRU})
//	if err != nil {
//	    return err
//	}
//	for _, addr := range []string{"a", "b", "a", "c"} {
//	    hit, _ := sim.Access(addr)
//	    fmt.Println(addr, hit)
//	}
//	fmt.Println(sim.Policy()) // "a c"
//
// Replaying a trace
//
//	addrs, err := trace.Read(f, 64) // align to 64-byte lines
//	rep, err := sim.Replay(ctx, slices.Values(addrs))
//	fmt.Printf("hit-rate=%.2f%%\n", 100*rep.Stats.HitRate())
//
// Thread-safety & complexity
//
// Nothing in this module is safe for concurrent use. A Simulator or policy
// must be owned by a single goroutine; cmd/cachesim runs one simulator per
// goroutine over a shared read-only trace. Every access is O(n) in the number
// of resident entries since lookups are linear scans.
package cachesim
