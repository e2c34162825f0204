package factorizations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sergeii/cryptotools/internal/core/entities/factorization"
	"github.com/sergeii/cryptotools/internal/core/repositories"
)

const (
	keyPrefix = "factorizations:"
	scanBatch = 100
)

type Repository struct {
	client *redis.Client
}

type cItem struct {
	N int64 `json:"n"`
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

func New(client *redis.Client) *Repository {
	return &Repository{
		client: client,
	}
}

func (r *Repository) Get(ctx context.Context, n int64) (factorization.Factorization, error) {
	value, err := r.client.Get(ctx, itemKey(n)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return factorization.Blank, repositories.ErrFactorizationNotFound
		}
		return factorization.Blank, fmt.Errorf("failed to get factorization: %w", err)
	}

	var item cItem
	if err := json.Unmarshal([]byte(value), &item); err != nil {
		return factorization.Blank, fmt.Errorf("failed to unmarshal factorization: %w", err)
	}

	return factorization.Factorization{N: item.N, X: item.X, Y: item.Y}, nil
}

func (r *Repository) Add(ctx context.Context, f factorization.Factorization, ttl time.Duration) error {
	item, err := json.Marshal(cItem{N: f.N, X: f.X, Y: f.Y})
	if err != nil {
		return fmt.Errorf("failed to marshal factorization: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, itemKey(f.N), item, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store factorization: %w", err)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var cursor uint64
	count := 0
	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to count factorizations: %w", err)
		}
		count += len(keys)
		if next == 0 {
			break
		}
		cursor = next
	}
	return count, nil
}

func itemKey(n int64) string {
	return keyPrefix + strconv.FormatInt(n, 10)
}
