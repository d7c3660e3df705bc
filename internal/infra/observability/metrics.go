package observability

import (
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the agency.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	calcDuration   *prometheus.HistogramVec
	toolDispatches *prometheus.CounterVec
	unroutedTasks  *prometheus.CounterVec
	externalErrors *prometheus.CounterVec
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
	requestsTotal  *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		calcDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fstech_calculator_duration_seconds",
				Help:    "Duration of calculator operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"calculator"},
		),
		toolDispatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fstech_tool_dispatches_total",
				Help: "Total tasks dispatched to agent tools.",
			},
			[]string{"agent", "tool"},
		),
		unroutedTasks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fstech_unrouted_tasks_total",
				Help: "Total tasks no agent tool matched.",
			},
			[]string{"agent"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fstech_external_errors_total",
				Help: "Total errors from external collaborators.",
			},
			[]string{"service"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fstech_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fstech_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fstech_requests_total",
				Help: "Total requests processed.",
			},
			[]string{"status"},
		),
	}
}

// RecordCalcDuration records the duration of one calculator run.
func (m *Metrics) RecordCalcDuration(calculator string, d time.Duration) {
	m.calcDuration.WithLabelValues(calculator).Observe(d.Seconds())
}

// IncrToolDispatch counts a successful tool dispatch.
func (m *Metrics) IncrToolDispatch(agent, tool string) {
	m.toolDispatches.WithLabelValues(agent, tool).Inc()
}

// IncrUnrouted counts a task description no tool matched.
func (m *Metrics) IncrUnrouted(agent string) {
	m.unroutedTasks.WithLabelValues(agent).Inc()
}

// IncrExternalError increments the external error counter.
func (m *Metrics) IncrExternalError(service string) {
	m.externalErrors.WithLabelValues(service).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// IncrRequest increments the request counter with a status label.
func (m *Metrics) IncrRequest(status string) {
	m.requestsTotal.WithLabelValues(status).Inc()
}

// GetUsageSnapshot returns the current counter values for the
// GET /v1/metrics/usage endpoint.
func (m *Metrics) GetUsageSnapshot() *domain.UsageMetrics {
	totalRequests := getCounterValue(m.requestsTotal, "success") +
		getCounterValue(m.requestsTotal, "error")
	errorCount := getCounterValue(m.requestsTotal, "error")
	cacheHits := getCounterValue(m.cacheHits, "pipeline")
	cacheMisses := getCounterValue(m.cacheMisses, "pipeline")

	dispatched := sumCounterVec(m.toolDispatches)
	unrouted := sumCounterVec(m.unroutedTasks)
	external := sumCounterVec(m.externalErrors)

	errorRate := float64(0)
	if totalRequests > 0 {
		errorRate = errorCount / totalRequests
	}
	cacheHitRate := float64(0)
	if cacheHits+cacheMisses > 0 {
		cacheHitRate = cacheHits / (cacheHits + cacheMisses)
	}

	return &domain.UsageMetrics{
		TotalRequests:   int64(totalRequests),
		ErrorRate:       errorRate,
		DispatchedTasks: int64(dispatched),
		UnroutedTasks:   int64(unrouted),
		CacheHitRate:    cacheHitRate,
		ExternalErrors:  int64(external),
		Period:          "all_time",
	}
}

// sumCounterVec totals a CounterVec across all label combinations.
func sumCounterVec(cv *prometheus.CounterVec) float64 {
	ch := make(chan prometheus.Metric, 64)
	go func() {
		cv.Collect(ch)
		close(ch)
	}()

	total := float64(0)
	for metric := range ch {
		var d dto.Metric
		if err := metric.Write(&d); err == nil && d.Counter != nil && d.Counter.Value != nil {
			total += *d.Counter.Value
		}
	}
	return total
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
