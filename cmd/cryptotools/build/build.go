package build

// Populated at link time with -ldflags "-X github.com/sergeii/cryptotools/cmd/cryptotools/build.Version=..."
var (
	Version = "development" // nolint: gochecknoglobals
	Commit  = "unknown"     // nolint: gochecknoglobals
	Time    = "unknown"     // nolint: gochecknoglobals
)
