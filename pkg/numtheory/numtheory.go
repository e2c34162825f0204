package numtheory

import (
	"errors"
	"math"
)

var (
	ErrInvalidModulus   = errors.New("modulus must be positive")
	ErrNegativeExponent = errors.New("exponent must not be negative")
	ErrNonPositive      = errors.New("number must be positive")
)

func isqrt(x uint64) uint64 {
	r := uint64(math.Sqrt(float64(x)))
	for r > 0 && r > x/r {
		r--
	}
	for r+1 <= math.MaxUint32 && (r+1)*(r+1) <= x {
		r++
	}
	return r
}
