package application

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/sergeii/cryptotools/cmd/cryptotools/components/exporter"
	"github.com/sergeii/cryptotools/cmd/cryptotools/container"
	"github.com/sergeii/cryptotools/cmd/cryptotools/logging"
	"github.com/sergeii/cryptotools/internal/ciphers"
	"github.com/sergeii/cryptotools/internal/metrics"
	"github.com/sergeii/cryptotools/internal/validation"
)

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		exporter.Module,
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Provide(metrics.New),
	fx.Provide(ciphers.NewRegistry),
	container.Module,
)
