package encrypttext

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/cryptotools/internal/ciphers"
	"github.com/sergeii/cryptotools/internal/core/entities/scheme"
	"github.com/sergeii/cryptotools/internal/metrics"
)

const op = "encrypt"

var ErrInvalidRequest = errors.New("invalid encryption request")

type UseCase struct {
	registry *ciphers.Registry
	metrics  *metrics.Collector
	validate *validator.Validate
	clock    clockwork.Clock
	logger   *zerolog.Logger
}

func New(
	registry *ciphers.Registry,
	validate *validator.Validate,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		registry: registry,
		metrics:  metrics,
		validate: validate,
		clock:    clock,
		logger:   logger,
	}
}

type Request struct {
	Scheme    scheme.Scheme `validate:"scheme"`
	Key       string        `validate:"required"`
	Plaintext string        `validate:"required,max=65536"`
}

func NewRequest(s scheme.Scheme, key, plaintext string) Request {
	return Request{
		Scheme:    s,
		Key:       key,
		Plaintext: plaintext,
	}
}

func (uc UseCase) Execute(_ context.Context, req Request) (string, error) {
	if err := uc.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	started := uc.clock.Now()
	slug := req.Scheme.Slug()

	c, err := uc.registry.New(req.Scheme, req.Key)
	if err != nil {
		uc.metrics.CipherErrors.WithLabelValues(slug, op).Inc()
		uc.logger.Debug().Err(err).Stringer("scheme", req.Scheme).Msg("Unable to build cipher")
		return "", err
	}

	ciphertext, err := c.Encrypt(req.Plaintext)
	if err != nil {
		uc.metrics.CipherErrors.WithLabelValues(slug, op).Inc()
		uc.logger.Debug().Err(err).Stringer("scheme", req.Scheme).Msg("Unable to encrypt plaintext")
		return "", err
	}

	uc.metrics.CipherRequests.WithLabelValues(slug, op).Inc()
	uc.metrics.CipherTextBytes.WithLabelValues(slug, op).Add(float64(len(ciphertext)))
	uc.metrics.CipherDurations.WithLabelValues(slug, op).Observe(uc.clock.Since(started).Seconds())

	uc.logger.Debug().
		Stringer("scheme", req.Scheme).Int("length", len(ciphertext)).
		Msg("Successfully encrypted plaintext")

	return ciphertext, nil
}
