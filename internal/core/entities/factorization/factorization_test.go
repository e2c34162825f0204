package factorization_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/cryptotools/internal/core/entities/factorization"
	"github.com/sergeii/cryptotools/pkg/numtheory"
)

func TestFactorization_New(t *testing.T) {
	f := factorization.New(5959, numtheory.Factorization{X: 59, Y: 101})
	assert.Equal(t, int64(5959), f.N)
	assert.Equal(t, int64(59), f.X)
	assert.Equal(t, int64(101), f.Y)
	assert.False(t, f.Trivial())
	assert.Equal(t, "5959 = 59 x 101", f.String())
}

func TestFactorization_Trivial(t *testing.T) {
	f := factorization.New(97, numtheory.Factorization{X: 1, Y: 97})
	assert.True(t, f.Trivial())
}
