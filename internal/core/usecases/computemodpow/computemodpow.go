package computemodpow

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sergeii/cryptotools/internal/metrics"
	"github.com/sergeii/cryptotools/pkg/numtheory"
)

var ErrInvalidRequest = errors.New("invalid modular exponentiation request")

type UseCase struct {
	metrics  *metrics.Collector
	validate *validator.Validate
}

func New(
	validate *validator.Validate,
	metrics *metrics.Collector,
) UseCase {
	return UseCase{
		metrics:  metrics,
		validate: validate,
	}
}

type Request struct {
	Base     int64
	Exponent int64 `validate:"gte=0"`
	Modulus  int64 `validate:"gt=0"`
}

func NewRequest(base, exponent, modulus int64) Request {
	return Request{
		Base:     base,
		Exponent: exponent,
		Modulus:  modulus,
	}
}

func (uc UseCase) Execute(_ context.Context, req Request) (int64, error) {
	if err := uc.validate.Struct(req); err != nil {
		uc.metrics.NumberTheoryErrors.WithLabelValues("modpow").Inc()
		return 0, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	result, err := numtheory.ModPow(req.Base, req.Exponent, req.Modulus)
	if err != nil {
		uc.metrics.NumberTheoryErrors.WithLabelValues("modpow").Inc()
		return 0, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	uc.metrics.NumberTheoryRequests.WithLabelValues("modpow").Inc()

	return result, nil
}
