package numtheory

import (
	"math/bits"
)

// ModPow computes base^exponent mod modulus using square-and-multiply.
// The result lies in [0, modulus) for any base, negative bases included.
func ModPow(base, exponent, modulus int64) (int64, error) {
	if modulus <= 0 {
		return 0, ErrInvalidModulus
	}
	if exponent < 0 {
		return 0, ErrNegativeExponent
	}
	if modulus == 1 {
		return 0, nil
	}

	m := uint64(modulus)
	b := base % modulus
	if b < 0 {
		b += modulus
	}

	acc, sq := uint64(1), uint64(b)
	for e := uint64(exponent); e > 0; e >>= 1 {
		if e&1 == 1 {
			acc = mulmod(acc, sq, m)
		}
		sq = mulmod(sq, sq, m)
	}

	return int64(acc), nil // nolint: gosec
}

func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
