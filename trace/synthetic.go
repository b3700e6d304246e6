package trace

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/IvanBrykalov/cachesim"
	"github.com/IvanBrykalov/cachesim/internal/util"
)

// SyntheticConfig describes a Zipf-skewed address stream.
type SyntheticConfig struct {
	// Addresses is the stream length.
	Addresses int
	// Keys is the number of distinct ranks; rank 0 is the hottest.
	Keys uint64
	// ZipfS (> 1) and ZipfV (>= 1) are the rand.NewZipf parameters.
	ZipfS float64
	ZipfV float64
	Seed  int64
	// LineSize aligns generated addresses; 0 or 1 disables alignment.
	LineSize uint64
}

// Validate reports the first unusable field.
func (c SyntheticConfig) Validate() error {
	switch {
	case c.Addresses < 0:
		return fmt.Errorf("%w: synthetic addresses must be >= 0", cachesim.ErrInvalidArgument)
	case c.Keys == 0:
		return fmt.Errorf("%w: synthetic keys must be > 0", cachesim.ErrInvalidArgument)
	case c.ZipfS <= 1:
		return fmt.Errorf("%w: zipf s must be > 1", cachesim.ErrInvalidArgument)
	case c.ZipfV < 1:
		return fmt.Errorf("%w: zipf v must be >= 1", cachesim.ErrInvalidArgument)
	}
	return ValidateLineSize(c.LineSize)
}

// Synthetic returns a deterministic stream of cfg.Addresses addresses.
// Each Zipf rank maps to a stable pseudo-random 0x address, so hot ranks
// are scattered rather than adjacent. The sequence is restartable: every
// iteration reseeds from cfg.Seed and yields the same addresses.
func Synthetic(cfg SyntheticConfig) (iter.Seq[string], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		r := rand.New(rand.NewSource(cfg.Seed))
		z := rand.NewZipf(r, cfg.ZipfS, cfg.ZipfV, cfg.Keys-1)
		for i := 0; i < cfg.Addresses; i++ {
			if !yield(RankAddr(z.Uint64(), cfg.LineSize)) {
				return
			}
		}
	}, nil
}

// RankAddr maps a rank to its synthetic address.
func RankAddr(rank, lineSize uint64) string {
	return format(util.AlignDown(util.Fnv64a(rank), lineSize))
}
