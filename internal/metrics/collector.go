package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/algebra/internal/bigint"
)

const namespace = "algebra"

// Collector owns a Prometheus registry with the algebra metrics:
//   - multiplications by algorithm (counter, duration and operand size histograms)
//   - polynomial operations by operation, coefficient domain and status
//   - active and total HTTP requests
//
// Each Collector has its own registry so tests and embedded servers never
// collide on global registration.
type Collector struct {
	registry *prometheus.Registry

	mulTotal    *prometheus.CounterVec
	mulDuration *prometheus.HistogramVec
	mulWords    *prometheus.HistogramVec

	polyTotal    *prometheus.CounterVec
	polyDuration *prometheus.HistogramVec

	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
}

var _ bigint.MulObserver = (*Collector)(nil)

// NewCollector creates a Collector with Go runtime and process collectors
// already registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		mulTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "multiplications_total",
			Help:      "Number of big-integer multiplications by algorithm.",
		}, []string{"algorithm"}),
		mulDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "multiplication_duration_seconds",
			Help:      "Duration of big-integer multiplications by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"algorithm"}),
		mulWords: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "multiplication_operand_words",
			Help:      "Length in words of the shorter multiplication operand.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		polyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polynomial_operations_total",
			Help:      "Number of polynomial operations by operation, coefficient domain and status.",
		}, []string{"op", "coef", "status"}),
		polyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "polynomial_operation_duration_seconds",
			Help:      "Duration of polynomial operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_requests",
			Help:      "Current number of active HTTP requests.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by path.",
		}, []string{"path"}),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.mulTotal, c.mulDuration, c.mulWords,
		c.polyTotal, c.polyDuration,
		c.activeRequests, c.requestsTotal,
	)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveMul records one multiplication. It satisfies bigint.MulObserver.
func (c *Collector) ObserveMul(alg bigint.Algorithm, words int, elapsed time.Duration) {
	name := alg.String()
	c.mulTotal.WithLabelValues(name).Inc()
	c.mulDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	c.mulWords.WithLabelValues(name).Observe(float64(words))
}

// ObservePoly records one polynomial operation.
func (c *Collector) ObservePoly(op, coef string, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.polyTotal.WithLabelValues(op, coef, status).Inc()
	c.polyDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RequestStarted increments the active and total request counts for path.
func (c *Collector) RequestStarted(path string) {
	c.activeRequests.Inc()
	c.requestsTotal.WithLabelValues(path).Inc()
}

// RequestFinished decrements the active request gauge.
func (c *Collector) RequestFinished() {
	c.activeRequests.Dec()
}
