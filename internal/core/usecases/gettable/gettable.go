package gettable

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sergeii/cryptotools/internal/core/entities/scheme"
	"github.com/sergeii/cryptotools/internal/metrics"
	"github.com/sergeii/cryptotools/pkg/classical/playfair"
)

var ErrInvalidRequest = errors.New("invalid table request")

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
	Keyword string `validate:"required,keyword"`
}

func NewRequest(keyword string) Request {
	return Request{
		Keyword: keyword,
	}
}

func (uc UseCase) Execute(_ context.Context, req Request) (playfair.Table, error) {
	slug := scheme.Playfair.Slug()

	if err := uc.validate.Struct(req); err != nil {
		uc.metrics.CipherErrors.WithLabelValues(slug, "table").Inc()
		return playfair.Table{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	table, err := playfair.NewTable(req.Keyword)
	if err != nil {
		uc.metrics.CipherErrors.WithLabelValues(slug, "table").Inc()
		return playfair.Table{}, err
	}

	uc.metrics.CipherRequests.WithLabelValues(slug, "table").Inc()

	return table, nil
}
