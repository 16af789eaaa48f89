package fenwickviz

import (
	"math/rand"

	rng "github.com/leesper/go_rng"
)

// RNG is the source of the values drawn by Engine.Randomize.
type RNG interface {
	// Int64n returns a uniform value in [0, n). n is always > 0.
	Int64n(n int64) int64
}

type globalRNG struct{}

func (r *globalRNG) Int64n(n int64) int64 {
	return rand.Int63n(n)
}

type localRNG struct {
	localRand *rng.UniformGenerator
}

func newLocalRNG(seed int64) *localRNG {
	return &localRNG{
		localRand: rng.NewUniformGenerator(seed),
	}
}

func (r *localRNG) Int64n(n int64) int64 {
	return r.localRand.Int64n(n)
}

// int64Between returns a uniform value in [lo, hi]. Callers keep
// hi-lo+1 within int64.
func int64Between(r RNG, lo, hi int64) int64 {
	return lo + r.Int64n(hi-lo+1)
}
