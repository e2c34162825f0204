package testutils

import (
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/cryptotools/cmd/cryptotools/persistence"
	"github.com/sergeii/cryptotools/internal/settings"
)

func NoLogging() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func ProvideSettings() settings.Settings {
	return settings.Settings{
		FactorizationCacheTTL: time.Hour,
		FermatSearchLimit:     1 << 20,
	}
}

// ProvidePersistence wires the factorization cache.
// An empty url keeps the cache in memory.
func ProvidePersistence(redisURL string) fx.Option {
	return fx.Options(
		fx.Supply(persistence.Config{RedisURL: redisURL}),
		fx.Provide(persistence.Provide),
	)
}
