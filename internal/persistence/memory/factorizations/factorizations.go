package factorizations

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sergeii/cryptotools/internal/core/entities/factorization"
	"github.com/sergeii/cryptotools/internal/core/repositories"
)

type item struct {
	factorization factorization.Factorization
	expires       time.Time
}

type Repository struct {
	items map[int64]item
	clock clockwork.Clock
	mutex sync.RWMutex
}

func New(c clockwork.Clock) *Repository {
	return &Repository{
		items: make(map[int64]item),
		clock: c,
	}
}

func (r *Repository) Get(_ context.Context, n int64) (factorization.Factorization, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	it, ok := r.items[n]
	if !ok || it.isExpired(r.clock.Now()) {
		return factorization.Blank, repositories.ErrFactorizationNotFound
	}
	return it.factorization, nil
}

func (r *Repository) Add(_ context.Context, f factorization.Factorization, ttl time.Duration) error {
	var expires time.Time
	if ttl > 0 {
		expires = r.clock.Now().Add(ttl)
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.items[f.N] = item{
		factorization: f,
		expires:       expires,
	}
	return nil
}

// Count returns the number of live items, dropping the expired ones along the way.
func (r *Repository) Count(_ context.Context) (int, error) {
	now := r.clock.Now()
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for n, it := range r.items {
		if it.isExpired(now) {
			delete(r.items, n)
		}
	}
	return len(r.items), nil
}

func (it item) isExpired(now time.Time) bool {
	return !it.expires.IsZero() && !it.expires.After(now)
}
