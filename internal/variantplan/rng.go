package variantplan

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// SubSeed derives the seed of one variant from the base seed. Regenerating
// the same (seed, index) pair reproduces the variant exactly.
func SubSeed(seed string, index int) string {
	return fmt.Sprintf("%s:%d", seed, index)
}

// rng is a splitmix64 generator seeded from the xxhash64 of a string.
// math/rand is avoided on purpose: its stream is not promised to stay the
// same across Go releases, and stored variants must be reproducible.
type rng struct {
	state uint64
}

func newRNG(seed string) *rng {
	return &rng{state: xxhash.Sum64String(seed)}
}

func (r *rng) next() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// intn returns a uniform value in [0, n) using rejection sampling. n must
// be > 0.
func (r *rng) intn(n int) int {
	bound := uint64(n)
	threshold := -bound % bound
	for {
		if x := r.next(); x >= threshold {
			return int(x % bound)
		}
	}
}

// shuffle permutes n elements in place with Fisher–Yates.
func (r *rng) shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.intn(i+1))
	}
}
