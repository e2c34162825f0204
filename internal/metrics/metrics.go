package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	CipherRequests  *prometheus.CounterVec
	CipherErrors    *prometheus.CounterVec
	CipherDurations *prometheus.HistogramVec
	CipherTextBytes *prometheus.CounterVec

	NumberTheoryRequests  *prometheus.CounterVec
	NumberTheoryErrors    *prometheus.CounterVec
	FactorizationTrivial  prometheus.Counter
	FactorizationDuration prometheus.Histogram

	FactorizationCacheHits   prometheus.Counter
	FactorizationCacheMisses prometheus.Counter
	FactorizationCacheErrors prometheus.Counter

	FactorizationRepositorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		CipherRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_requests_total",
			Help: "The total number of successful cipher operations",
		}, []string{"scheme", "op"}),
		CipherErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_errors_total",
			Help: "The total number of cipher operations rejected due to invalid input",
		}, []string{"scheme", "op"}),
		CipherDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "cipher_duration_seconds",
			Help: "Duration of cipher operations",
		}, []string{"scheme", "op"}),
		CipherTextBytes: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_text_bytes_total",
			Help: "The total amount of text bytes produced by cipher operations",
		}, []string{"scheme", "op"}),
		NumberTheoryRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "numtheory_requests_total",
			Help: "The total number of successful number theory computations",
		}, []string{"op"}),
		NumberTheoryErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "numtheory_errors_total",
			Help: "The total number of rejected number theory computations",
		}, []string{"op"}),
		FactorizationTrivial: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "factorization_trivial_total",
			Help: "The total number of factorizations that found no factor other than 1",
		}),
		FactorizationDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name: "factorization_duration_seconds",
			Help: "Duration of Fermat factorization searches",
		}),
		FactorizationCacheHits: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "factorization_cache_hits_total",
			Help: "The total number of factorizations served from the cache",
		}),
		FactorizationCacheMisses: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "factorization_cache_misses_total",
			Help: "The total number of factorizations missing from the cache",
		}),
		FactorizationCacheErrors: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "factorization_cache_errors_total",
			Help: "The total number of failed cache reads and writes",
		}),
		FactorizationRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "repo_factorizations_size",
			Help: "The number of factorizations stored in the repository",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	c.mutex.Lock()
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.mutex.Unlock()

	for _, observer := range observers {
		go observer.Observe(ctx, c)
	}
}
