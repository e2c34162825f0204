package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/sergeii/cryptotools/cmd/cryptotools/application"
	"github.com/sergeii/cryptotools/cmd/cryptotools/commander"
	"github.com/sergeii/cryptotools/cmd/cryptotools/components/api"
	"github.com/sergeii/cryptotools/cmd/cryptotools/components/exporter"
	"github.com/sergeii/cryptotools/cmd/cryptotools/components/observer"
	"github.com/sergeii/cryptotools/cmd/cryptotools/logging"
	"github.com/sergeii/cryptotools/cmd/cryptotools/persistence"
	"github.com/sergeii/cryptotools/cmd/cryptotools/tools"
	"github.com/sergeii/cryptotools/internal/settings"
)

func main() {
	cli := commander.CLI{}
	cli.Plugins = kong.Plugins{
		&tools.CLI{},
	}
	cli.Run.Plugins = kong.Plugins{
		&api.CLI{},
		&observer.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("cryptotools"),
		kong.Description("Classical ciphers and number theory toolbox"),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		fx.Supply(persistence.Config{
			RedisURL: cli.Globals.RedisURL,
		}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Supply(settings.Settings{
			FactorizationCacheTTL: cli.Globals.FactorizationCacheTTL,
			FermatSearchLimit:     cli.Globals.FermatSearchLimit,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
