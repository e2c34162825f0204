package commander

import (
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sergeii/cryptotools/cmd/cryptotools/build"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error"       help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"console" enum:"console,stdout,stderr,json" help:"Specifies the format for log output"`

	RedisURL string `default:"" help:"Defines the Redis URL connection used to cache factorizations. The cache is kept in memory of a single process when empty, so a standalone observer needs Redis to see it"` // nolint:lll

	ExporterHTTPListenAddress   string        `default:":9000" help:"Sets the address where the Prometheus exporter server listens for requests"`            // nolint:lll
	ExporterHTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`                  // nolint:lll
	ExporterHTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response before timing out"`                       // nolint:lll
	ExporterHTTPShutdownTimeout time.Duration `default:"10s"   help:"The amount of time the server will wait gracefully closing connections before exiting"` // nolint:lll

	FactorizationCacheTTL time.Duration `default:"24h"     help:"Sets how long a computed factorization is kept in the cache"`               // nolint:lll
	FermatSearchLimit     uint64        `default:"1048576" help:"Caps the number of candidates tried by Fermat's method before giving up"` // nolint:lll
}

type VersionCmd struct{}

func (v *VersionCmd) Run(out io.Writer) error {
	_, err := fmt.Fprintf(out, "Version: %s (%s) built at %s\n", build.Version, build.Commit, build.Time)
	return err
}

type RunCmd struct {
	kong.Plugins
}

type CLI struct {
	Globals
	kong.Plugins

	Version VersionCmd `cmd:"" help:"Display the app version and exit"`
	Run     RunCmd     `cmd:"" help:"Start a long running component"`
}
