package numtheory

import (
	"math"
)

const DefaultSearchLimit = 1 << 20

type Factorization struct {
	X int64
	Y int64
}

// Trivial reports whether no factor other than 1 and the number itself was found.
func (f Factorization) Trivial() bool {
	return f.X == 1
}

type fermatConfig struct {
	searchLimit uint64
}

type FermatOption func(*fermatConfig)

// WithSearchLimit caps the number of candidates examined for an odd number.
func WithSearchLimit(limit uint64) FermatOption {
	return func(c *fermatConfig) {
		c.searchLimit = limit
	}
}

// FermatFactor splits n into two factors x <= y with x*y == n.
// Odd numbers are searched for a representation a^2 - b^2 starting from a = ceil(sqrt(n)),
// which finds the pair of factors closest to each other first.
// When nothing is found within the search limit, the trivial pair (1, n) is returned.
func FermatFactor(n int64, opts ...FermatOption) (Factorization, error) {
	if n < 1 {
		return Factorization{}, ErrNonPositive
	}

	cfg := fermatConfig{
		searchLimit: DefaultSearchLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if n%2 == 0 {
		if n == 2 {
			return Factorization{X: 1, Y: 2}, nil
		}
		return Factorization{X: 2, Y: n / 2}, nil
	}

	un := uint64(n)
	a := isqrt(un)
	if a*a < un {
		a++
	}
	// a = (n+1)/2 always yields the trivial pair
	upper := min((un+1)/2, math.MaxUint32)
	for steps := uint64(0); a <= upper && steps < cfg.searchLimit; steps++ {
		rem := a*a - un
		b := isqrt(rem)
		if b*b == rem {
			return Factorization{X: int64(a - b), Y: int64(a + b)}, nil // nolint: gosec
		}
		a++
	}

	return Factorization{X: 1, Y: n}, nil
}
