package factorization

import (
	"fmt"

	"github.com/sergeii/cryptotools/pkg/numtheory"
)

// Factorization is a split of N into two factors X <= Y.
type Factorization struct {
	N int64
	X int64
	Y int64
}

var Blank Factorization // nolint: gochecknoglobals

func New(n int64, pair numtheory.Factorization) Factorization {
	return Factorization{
		N: n,
		X: pair.X,
		Y: pair.Y,
	}
}

func (f Factorization) Trivial() bool {
	return f.X == 1
}

func (f Factorization) String() string {
	return fmt.Sprintf("%d = %d x %d", f.N, f.X, f.Y)
}
