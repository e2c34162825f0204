package factorize_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/cryptotools/internal/core/entities/factorization"
	"github.com/sergeii/cryptotools/internal/core/repositories"
	"github.com/sergeii/cryptotools/internal/core/usecases/factorize"
	"github.com/sergeii/cryptotools/internal/metrics"
	"github.com/sergeii/cryptotools/internal/persistence/memory/factorizations"
	tu "github.com/sergeii/cryptotools/internal/testutils"
	"github.com/sergeii/cryptotools/internal/validation"
	"github.com/sergeii/cryptotools/pkg/numtheory"
)

type MockFactorizationRepository struct {
	mock.Mock
	repositories.FactorizationRepository
}

func (m *MockFactorizationRepository) Get(ctx context.Context, n int64) (factorization.Factorization, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(factorization.Factorization), args.Error(1) // nolint: forcetypeassert
}

func (m *MockFactorizationRepository) Add(
	ctx context.Context,
	f factorization.Factorization,
	ttl time.Duration,
) error {
	args := m.Called(ctx, f, ttl)
	return args.Error(0)
}

func makeUseCase(
	repo repositories.FactorizationRepository,
	opts factorize.UseCaseOptions,
) (factorize.UseCase, *metrics.Collector) {
	logger := zerolog.Nop()
	collector := metrics.New()
	uc := factorize.New(repo, opts, tu.Must(validation.New()), collector, clockwork.NewFakeClock(), &logger)
	return uc, collector
}

func TestFactorizeUseCase_CacheMiss(t *testing.T) {
	ctx := context.TODO()
	want := factorization.New(5959, numtheory.Factorization{X: 59, Y: 101})

	repo := new(MockFactorizationRepository)
	repo.On("Get", ctx, int64(5959)).Return(factorization.Blank, repositories.ErrFactorizationNotFound)
	repo.On("Add", ctx, want, time.Hour).Return(nil)

	uc, collector := makeUseCase(repo, factorize.UseCaseOptions{CacheTTL: time.Hour})
	got, err := uc.Execute(ctx, factorize.NewRequest(5959))

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.FactorizationCacheMisses))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.FactorizationCacheHits))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.FactorizationTrivial))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.NumberTheoryRequests.WithLabelValues("factor")))

	repo.AssertExpectations(t)
}

func TestFactorizeUseCase_CacheHit(t *testing.T) {
	ctx := context.TODO()
	cached := factorization.New(5959, numtheory.Factorization{X: 59, Y: 101})

	repo := new(MockFactorizationRepository)
	repo.On("Get", ctx, int64(5959)).Return(cached, nil)

	uc, collector := makeUseCase(repo, factorize.UseCaseOptions{CacheTTL: time.Hour})
	got, err := uc.Execute(ctx, factorize.NewRequest(5959))

	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.FactorizationCacheHits))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.FactorizationCacheMisses))

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestFactorizeUseCase_SearchLimit(t *testing.T) {
	ctx := context.TODO()
	want := factorization.New(5959, numtheory.Factorization{X: 1, Y: 5959})

	repo := new(MockFactorizationRepository)
	repo.On("Get", ctx, int64(5959)).Return(factorization.Blank, repositories.ErrFactorizationNotFound)

	uc, collector := makeUseCase(repo, factorize.UseCaseOptions{SearchLimit: 1, CacheTTL: time.Minute})
	got, err := uc.Execute(ctx, factorize.NewRequest(5959))

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.Trivial())
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.FactorizationTrivial))

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestFactorizeUseCase_TrivialResultIsNotReusedByLargerLimit(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()
	clock := clockwork.NewFakeClock()
	validate := tu.Must(validation.New())
	repo := factorizations.New(clock)

	// Given a use case with a search limit too small to find the factors
	narrow := factorize.New(
		repo, factorize.UseCaseOptions{SearchLimit: 1, CacheTTL: time.Hour},
		validate, metrics.New(), clock, &logger,
	)
	got, err := narrow.Execute(ctx, factorize.NewRequest(5959))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.X)

	// Then the trivial result is not cached
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// When another use case with a sufficient limit shares the same repository
	wide := factorize.New(
		repo, factorize.UseCaseOptions{SearchLimit: 1 << 20, CacheTTL: time.Hour},
		validate, metrics.New(), clock, &logger,
	)
	got, err = wide.Execute(ctx, factorize.NewRequest(5959))
	require.NoError(t, err)
	assert.Equal(t, int64(59), got.X)
	assert.Equal(t, int64(101), got.Y)

	// Then the factors are cached and reused even by the narrow one
	got, err = narrow.Execute(ctx, factorize.NewRequest(5959))
	require.NoError(t, err)
	assert.Equal(t, int64(59), got.X)
}

func TestFactorizeUseCase_CachedTrivialResultIsRecomputed(t *testing.T) {
	ctx := context.TODO()
	stale := factorization.New(5959, numtheory.Factorization{X: 1, Y: 5959})
	want := factorization.New(5959, numtheory.Factorization{X: 59, Y: 101})

	repo := new(MockFactorizationRepository)
	repo.On("Get", ctx, int64(5959)).Return(stale, nil)
	repo.On("Add", ctx, want, time.Hour).Return(nil)

	uc, collector := makeUseCase(repo, factorize.UseCaseOptions{CacheTTL: time.Hour})
	got, err := uc.Execute(ctx, factorize.NewRequest(5959))

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.FactorizationCacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.FactorizationCacheMisses))

	repo.AssertExpectations(t)
}

func TestFactorizeUseCase_RepoFailures(t *testing.T) {
	ctx := context.TODO()
	want := factorization.New(15, numtheory.Factorization{X: 3, Y: 5})

	repo := new(MockFactorizationRepository)
	repo.On("Get", ctx, int64(15)).Return(factorization.Blank, errors.New("connection refused"))
	repo.On("Add", ctx, want, time.Duration(0)).Return(errors.New("connection refused"))

	uc, collector := makeUseCase(repo, factorize.UseCaseOptions{})
	got, err := uc.Execute(ctx, factorize.NewRequest(15))

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.FactorizationCacheErrors))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.FactorizationCacheMisses))

	repo.AssertExpectations(t)
}

func TestFactorizeUseCase_Invalid(t *testing.T) {
	for _, n := range []int64{0, -1, -5959} {
		ctx := context.TODO()
		repo := new(MockFactorizationRepository)

		uc, collector := makeUseCase(repo, factorize.UseCaseOptions{})
		_, err := uc.Execute(ctx, factorize.NewRequest(n))

		assert.ErrorIs(t, err, factorize.ErrInvalidRequest)
		assert.Equal(t, 1.0, testutil.ToFloat64(collector.NumberTheoryErrors.WithLabelValues("factor")))
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	}
}
