package repositories

import (
	"context"
	"time"

	"github.com/sergeii/cryptotools/internal/core/entities/factorization"
)

// FactorizationRepository caches factorization results keyed by the factorized number.
// A zero ttl keeps the item until it is evicted by other means.
type FactorizationRepository interface {
	Get(context.Context, int64) (factorization.Factorization, error)
	Add(context.Context, factorization.Factorization, time.Duration) error
	Count(context.Context) (int, error)
}
