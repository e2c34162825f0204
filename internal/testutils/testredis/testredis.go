package testredis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/sergeii/cryptotools/internal/testutils"
)

func MakeClientFromMini(t *testing.T, mr *miniredis.Miniredis) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:       mr.Addr(),
		MaxRetries: -1,
	})
	t.Cleanup(func() {
		testutils.Ignore(rdb.Close())
	})
	return rdb
}

func MakeClient(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	return MakeClientFromMini(t, mr)
}

// URL returns a connection url suitable for redis.ParseURL.
func URL(mr *miniredis.Miniredis) string {
	return "redis://" + mr.Addr()
}
