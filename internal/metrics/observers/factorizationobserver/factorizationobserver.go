package factorizationobserver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/cryptotools/internal/core/repositories"
	"github.com/sergeii/cryptotools/internal/metrics"
)

type FactorizationObserver struct {
	factorizationRepo repositories.FactorizationRepository
	logger            *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	factorizationRepo repositories.FactorizationRepository,
	logger *zerolog.Logger,
) FactorizationObserver {
	observer := FactorizationObserver{
		factorizationRepo: factorizationRepo,
		logger:            logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o FactorizationObserver) Observe(ctx context.Context, m *metrics.Collector) {
	count, err := o.factorizationRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe factorization count")
		return
	}
	m.FactorizationRepositorySize.Set(float64(count))
}
