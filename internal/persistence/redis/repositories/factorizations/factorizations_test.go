package factorizations_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/cryptotools/internal/core/entities/factorization"
	"github.com/sergeii/cryptotools/internal/core/repositories"
	"github.com/sergeii/cryptotools/internal/persistence/redis/repositories/factorizations"
	tu "github.com/sergeii/cryptotools/internal/testutils"
	"github.com/sergeii/cryptotools/internal/testutils/testredis"
	"github.com/sergeii/cryptotools/pkg/numtheory"
)

func TestFactorizationsRedisRepo_Add_OK(t *testing.T) {
	ctx := context.TODO()
	mr := miniredis.RunT(t)
	rdb := testredis.MakeClientFromMini(t, mr)

	repo := factorizations.New(rdb)

	// Given a factorization
	f := factorization.New(5959, numtheory.Factorization{X: 59, Y: 101})

	// When it is added to the repository
	err := repo.Add(ctx, f, time.Minute)
	require.NoError(t, err)

	// Then it should be stored under its own key with the given ttl
	stored := tu.Must(rdb.Get(ctx, "factorizations:5959").Result())
	var item map[string]int64
	tu.MustNoErr(json.Unmarshal([]byte(stored), &item))
	assert.Equal(t, map[string]int64{"n": 5959, "x": 59, "y": 101}, item)
	assert.Equal(t, time.Minute, mr.TTL("factorizations:5959"))
}

func TestFactorizationsRedisRepo_Add_NoTTL(t *testing.T) {
	ctx := context.TODO()
	mr := miniredis.RunT(t)
	rdb := testredis.MakeClientFromMini(t, mr)

	repo := factorizations.New(rdb)

	f := factorization.New(15, numtheory.Factorization{X: 3, Y: 5})
	require.NoError(t, repo.Add(ctx, f, 0))

	assert.True(t, mr.Exists("factorizations:15"))
	assert.Equal(t, time.Duration(0), mr.TTL("factorizations:15"))
}

func TestFactorizationsRedisRepo_Get(t *testing.T) {
	ctx := context.TODO()
	mr := miniredis.RunT(t)
	rdb := testredis.MakeClientFromMini(t, mr)

	repo := factorizations.New(rdb)

	// Given an empty repository
	_, err := repo.Get(ctx, 5959)
	require.ErrorIs(t, err, repositories.ErrFactorizationNotFound)

	// When a factorization is added
	f := factorization.New(5959, numtheory.Factorization{X: 59, Y: 101})
	require.NoError(t, repo.Add(ctx, f, time.Minute))

	// Then it can be obtained back
	got, err := repo.Get(ctx, 5959)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	// When the ttl has passed
	mr.FastForward(time.Minute)

	// Then the factorization is gone
	_, err = repo.Get(ctx, 5959)
	assert.ErrorIs(t, err, repositories.ErrFactorizationNotFound)
}

func TestFactorizationsRedisRepo_Get_Corrupted(t *testing.T) {
	ctx := context.TODO()
	mr := miniredis.RunT(t)
	rdb := testredis.MakeClientFromMini(t, mr)

	repo := factorizations.New(rdb)

	tu.MustNoErr(mr.Set("factorizations:15", "not json"))

	_, err := repo.Get(ctx, 15)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrFactorizationNotFound)
}

func TestFactorizationsRedisRepo_Count(t *testing.T) {
	ctx := context.TODO()
	mr := miniredis.RunT(t)
	rdb := testredis.MakeClientFromMini(t, mr)

	repo := factorizations.New(rdb)

	// Given an empty repository
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// And unrelated keys in the same database
	tu.MustNoErr(mr.Set("other:1", "foo"))

	// When a few hundred factorizations are added
	for n := int64(1); n <= 250; n++ {
		pair := tu.Must(numtheory.FermatFactor(n))
		ttl := time.Hour
		if n%5 == 0 {
			ttl = time.Second
		}
		require.NoError(t, repo.Add(ctx, factorization.New(n, pair), ttl))
	}

	// Then all of them are counted
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250, count)

	// When some of them have expired
	mr.FastForward(time.Second)

	// Then only the live ones are counted
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200, count)
}

func TestFactorizationsRedisRepo_Unavailable(t *testing.T) {
	ctx := context.TODO()
	mr := miniredis.RunT(t)
	rdb := testredis.MakeClientFromMini(t, mr)

	repo := factorizations.New(rdb)
	mr.Close()

	_, err := repo.Get(ctx, 15)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrFactorizationNotFound)

	err = repo.Add(ctx, factorization.New(15, numtheory.Factorization{X: 3, Y: 5}), time.Minute)
	assert.Error(t, err)

	_, err = repo.Count(ctx)
	assert.Error(t, err)
}
