package factorize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/cryptotools/internal/core/entities/factorization"
	"github.com/sergeii/cryptotools/internal/core/repositories"
	"github.com/sergeii/cryptotools/internal/metrics"
	"github.com/sergeii/cryptotools/pkg/numtheory"
)

var ErrInvalidRequest = errors.New("invalid factorization request")

type UseCaseOptions struct {
	SearchLimit uint64
	CacheTTL    time.Duration
}

type UseCase struct {
	factorizationRepo repositories.FactorizationRepository
	opts              UseCaseOptions
	metrics           *metrics.Collector
	validate          *validator.Validate
	clock             clockwork.Clock
	logger            *zerolog.Logger
}

func New(
	factorizationRepo repositories.FactorizationRepository,
	opts UseCaseOptions,
	validate *validator.Validate,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		factorizationRepo: factorizationRepo,
		opts:              opts,
		metrics:           metrics,
		validate:          validate,
		clock:             clock,
		logger:            logger,
	}
}

type Request struct {
	N int64 `validate:"gte=1"`
}

func NewRequest(n int64) Request {
	return Request{N: n}
}

func (uc UseCase) Execute(ctx context.Context, req Request) (factorization.Factorization, error) {
	if err := uc.validate.Struct(req); err != nil {
		uc.metrics.NumberTheoryErrors.WithLabelValues("factor").Inc()
		return factorization.Blank, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if cached, ok := uc.lookup(ctx, req.N); ok {
		uc.metrics.NumberTheoryRequests.WithLabelValues("factor").Inc()
		return cached, nil
	}

	started := uc.clock.Now()
	pair, err := numtheory.FermatFactor(req.N, uc.searchOptions()...)
	if err != nil {
		uc.metrics.NumberTheoryErrors.WithLabelValues("factor").Inc()
		return factorization.Blank, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	uc.metrics.FactorizationDuration.Observe(uc.clock.Since(started).Seconds())

	result := factorization.New(req.N, pair)
	if result.Trivial() {
		uc.metrics.FactorizationTrivial.Inc()
	}

	// a trivial result depends on the search limit, a larger limit may still find factors
	if !result.Trivial() {
		uc.store(ctx, result)
	}

	uc.metrics.NumberTheoryRequests.WithLabelValues("factor").Inc()
	uc.logger.Debug().Stringer("result", result).Msg("Successfully factorized number")

	return result, nil
}

func (uc UseCase) lookup(ctx context.Context, n int64) (factorization.Factorization, bool) {
	cached, err := uc.factorizationRepo.Get(ctx, n)
	switch {
	case err == nil && !cached.Trivial():
		uc.metrics.FactorizationCacheHits.Inc()
		return cached, true
	case err == nil:
		uc.metrics.FactorizationCacheMisses.Inc()
	case errors.Is(err, repositories.ErrFactorizationNotFound):
		uc.metrics.FactorizationCacheMisses.Inc()
	default:
		uc.metrics.FactorizationCacheErrors.Inc()
		uc.logger.Warn().Err(err).Int64("n", n).Msg("Failed to obtain cached factorization")
	}
	return factorization.Blank, false
}

// store does not fail the request, the result is returned regardless
func (uc UseCase) store(ctx context.Context, result factorization.Factorization) {
	if err := uc.factorizationRepo.Add(ctx, result, uc.opts.CacheTTL); err != nil {
		uc.metrics.FactorizationCacheErrors.Inc()
		uc.logger.Warn().Err(err).Int64("n", result.N).Msg("Failed to cache factorization")
	}
}

func (uc UseCase) searchOptions() []numtheory.FermatOption {
	if uc.opts.SearchLimit == 0 {
		return nil
	}
	return []numtheory.FermatOption{numtheory.WithSearchLimit(uc.opts.SearchLimit)}
}
