package computegcd

import (
	"context"
	"errors"
	"fmt"

	"github.com/sergeii/cryptotools/internal/metrics"
	"github.com/sergeii/cryptotools/pkg/numtheory"
)

var ErrInvalidRequest = errors.New("invalid gcd request")

type UseCase struct {
	metrics *metrics.Collector
}

func New(metrics *metrics.Collector) UseCase {
	return UseCase{
		metrics: metrics,
	}
}

type Request struct {
	A int64
	B int64
}

func NewRequest(a, b int64) Request {
	return Request{A: a, B: b}
}

func (uc UseCase) Execute(_ context.Context, req Request) (int64, error) {
	gcd := numtheory.GCD(req.A, req.B)
	// 2^63 wraps around, it is the only gcd that does not fit into int64
	if gcd < 0 {
		uc.metrics.NumberTheoryErrors.WithLabelValues("gcd").Inc()
		return 0, fmt.Errorf("%w: gcd of %d and %d exceeds int64", ErrInvalidRequest, req.A, req.B)
	}
	uc.metrics.NumberTheoryRequests.WithLabelValues("gcd").Inc()
	return gcd, nil
}
