package testutils

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/cryptotools/cmd/cryptotools/application"
	"github.com/sergeii/cryptotools/cmd/cryptotools/components/api"
	"github.com/sergeii/cryptotools/internal/core/repositories"
	"github.com/sergeii/cryptotools/internal/metrics"
)

type TestServerDeps struct {
	Factorizations repositories.FactorizationRepository
	Collector      *metrics.Collector
}

func PrepareTestServer(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, func()) {
	gin.SetMode(gin.ReleaseMode) // prevent gin from overwriting middlewares

	var router *gin.Engine
	fxopts := []fx.Option{
		fx.Supply(api.Config{
			HTTPListenAddr: "localhost:0",
		}),
		fx.Provide(NoLogging),
		fx.Provide(ProvideSettings),
		ProvidePersistence(""),
		application.Module,
		api.Module,
		fx.NopLogger,
		fx.Populate(&router),
	}
	fxopts = append(fxopts, extra...)

	app := fxtest.New(tb, fxopts...)
	app.RequireStart()

	ts := httptest.NewServer(router)

	return ts, func() {
		defer app.RequireStop() // nolint: errcheck
		defer ts.Close()
	}
}

func PrepareTestServerWithDeps(
	tb fxtest.TB,
	extra ...fx.Option,
) (*httptest.Server, TestServerDeps, func()) {
	var deps TestServerDeps
	extra = append(
		extra,
		fx.Populate(&deps.Factorizations, &deps.Collector),
	)
	ts, cleanup := PrepareTestServer(tb, extra...)
	return ts, deps, cleanup
}
