package preparetext

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sergeii/cryptotools/internal/ciphers"
	"github.com/sergeii/cryptotools/internal/core/entities/scheme"
	"github.com/sergeii/cryptotools/internal/metrics"
)

const op = "prepare"

var ErrInvalidRequest = errors.New("invalid prepare request")

type UseCase struct {
	registry *ciphers.Registry
	metrics  *metrics.Collector
	validate *validator.Validate
	logger   *zerolog.Logger
}

func New(
	registry *ciphers.Registry,
	validate *validator.Validate,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		registry: registry,
		metrics:  metrics,
		validate: validate,
		logger:   logger,
	}
}

type Request struct {
	Scheme scheme.Scheme `validate:"scheme"`
	Text   string        `validate:"required,max=65536"`
}

func NewRequest(s scheme.Scheme, text string) Request {
	return Request{
		Scheme: s,
		Text:   text,
	}
}

// Execute reduces free-form text to plaintext the scheme is able to encrypt.
func (uc UseCase) Execute(_ context.Context, req Request) (string, error) {
	if err := uc.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	slug := req.Scheme.Slug()
	prepared, err := uc.registry.Prepare(req.Scheme, req.Text)
	if err != nil {
		uc.metrics.CipherErrors.WithLabelValues(slug, op).Inc()
		uc.logger.Debug().Err(err).Stringer("scheme", req.Scheme).Msg("Unable to prepare text")
		return "", err
	}

	uc.metrics.CipherRequests.WithLabelValues(slug, op).Inc()
	uc.metrics.CipherTextBytes.WithLabelValues(slug, op).Add(float64(len(prepared)))

	return prepared, nil
}
