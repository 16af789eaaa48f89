package fenwickviz

import "errors"

// Option configures an Engine created by New.
type Option func(*Engine) error

// RandomNumberGenerator sets the generator used by Randomize.
//
// By default the package level generator from math/rand is used. A nil
// generator is rejected.
func RandomNumberGenerator(r RNG) Option {
	return func(e *Engine) error {
		if r == nil {
			return errors.New("RandomNumberGenerator must not be nil")
		}
		e.rng = r
		return nil
	}
}

// LocalRandomNumberGenerator makes Randomize draw from a private
// uniform generator seeded with seed, so that the sequence of
// randomized arrays is reproducible.
func LocalRandomNumberGenerator(seed int64) Option {
	return RandomNumberGenerator(newLocalRNG(seed))
}

// ClearResultOnUpdate makes every successful Update discard the last
// query result.
//
// Without this option a result survives updates and may no longer match
// the prefix sum of the current array.
func ClearResultOnUpdate() Option {
	return func(e *Engine) error {
		e.clearOnUpdate = true
		return nil
	}
}
