package api_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/sergeii/cryptotools/cmd/cryptotools/application"
	"github.com/sergeii/cryptotools/cmd/cryptotools/components/api"
	"github.com/sergeii/cryptotools/cmd/cryptotools/components/observer"
	"github.com/sergeii/cryptotools/internal/metrics"
	tu "github.com/sergeii/cryptotools/internal/testutils"
)

func TestAPI_Run(t *testing.T) {
	ctx := context.TODO()
	gin.SetMode(gin.ReleaseMode)

	var component *api.Component

	app := fx.New(
		fx.Provide(tu.NoLogging),
		fx.Provide(tu.ProvideSettings),
		tu.ProvidePersistence(""),
		application.Module,
		fx.Supply(api.Config{
			HTTPListenAddr: "localhost:0",
		}),
		api.Module,
		fx.NopLogger,
		fx.Populate(&component),
	)
	require.NoError(t, app.Start(ctx))

	url := "http://" + component.Addr().String() + "/api/playfair/table?key=nancy"
	resp, err := http.Get(url) // nolint: noctx
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	tu.Ignore(resp.Body.Close())

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), `"letters":"nacybdefghijklmoprstuvwxz"`)

	require.NoError(t, app.Stop(ctx))

	_, err = http.Get(url) // nolint: noctx
	assert.Error(t, err)
}

func TestAPI_AddressInUse(t *testing.T) {
	ctx := context.TODO()
	gin.SetMode(gin.ReleaseMode)

	var first *api.Component
	app := fx.New(
		fx.Provide(tu.NoLogging),
		fx.Provide(tu.ProvideSettings),
		tu.ProvidePersistence(""),
		application.Module,
		fx.Supply(api.Config{HTTPListenAddr: "localhost:0"}),
		api.Module,
		fx.NopLogger,
		fx.Populate(&first),
	)
	require.NoError(t, app.Start(ctx))
	defer func() {
		tu.Ignore(app.Stop(ctx))
	}()

	second := fx.New(
		fx.Provide(tu.NoLogging),
		fx.Provide(tu.ProvideSettings),
		tu.ProvidePersistence(""),
		application.Module,
		fx.Supply(api.Config{HTTPListenAddr: first.Addr().String()}),
		api.Module,
		fx.NopLogger,
		fx.Invoke(func(*api.Component) {}),
	)
	assert.Error(t, second.Start(ctx))
}

func TestAPI_ObserverSharesCache(t *testing.T) {
	ctx := context.TODO()
	gin.SetMode(gin.ReleaseMode)

	var component *api.Component
	var collector *metrics.Collector

	// Given the api server runs together with the observer on an in-memory cache
	app := fx.New(
		fx.Provide(tu.NoLogging),
		fx.Provide(tu.ProvideSettings),
		tu.ProvidePersistence(""),
		application.Module,
		fx.Supply(api.Config{HTTPListenAddr: "localhost:0"}),
		fx.Supply(observer.Config{ObserveInterval: time.Millisecond * 10}),
		api.Module,
		observer.Module,
		fx.NopLogger,
		fx.Invoke(func(*observer.Component) {}),
		fx.Populate(&component, &collector),
	)
	require.NoError(t, app.Start(ctx))
	defer func() {
		tu.Ignore(app.Stop(ctx))
	}()

	// When a number is factorized through the api
	resp, err := http.Get("http://" + component.Addr().String() + "/api/numtheory/factor?n=5959") // nolint: noctx
	require.NoError(t, err)
	tu.Ignore(resp.Body.Close())
	require.Equal(t, 200, resp.StatusCode)

	// Then the observer reports the cached factorization
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(collector.FactorizationRepositorySize) == 1
	}, time.Second, time.Millisecond*10)
}
