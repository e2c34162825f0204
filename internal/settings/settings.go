package settings

import (
	"time"
)

type Settings struct {
	FactorizationCacheTTL time.Duration
	FermatSearchLimit     uint64
}
