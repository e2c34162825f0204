package persistence

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/cryptotools/internal/core/repositories"
	"github.com/sergeii/cryptotools/internal/persistence/memory/factorizations"
	redisfactorizations "github.com/sergeii/cryptotools/internal/persistence/redis/repositories/factorizations"
)

type Config struct {
	RedisURL string
}

type Repositories struct {
	fx.Out

	Factorizations repositories.FactorizationRepository
}

// Provide selects the factorization cache backend.
// Without a redis url the cache lives in process memory.
func Provide(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) (Repositories, error) {
	if cfg.RedisURL == "" {
		logger.Debug().Msg("Using in-memory factorization cache")
		return Repositories{
			Factorizations: factorizations.New(clock),
		}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return Repositories{}, err
	}
	rdb := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if pingErr := rdb.Ping(ctx).Err(); pingErr != nil {
				logger.Error().Err(pingErr).Str("addr", opts.Addr).Msg("Failed to connect to redis")
				return pingErr
			}
			logger.Debug().Str("addr", opts.Addr).Msg("Using redis factorization cache")
			return nil
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})

	return Repositories{
		Factorizations: redisfactorizations.New(rdb),
	}, nil
}
