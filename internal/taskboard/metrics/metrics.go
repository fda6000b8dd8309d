// Package metrics collects and exposes Prometheus metrics for taskboard.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers and middleware report to. A nil Recorder is not
// valid; use Nop when metrics are disabled.
type Recorder interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
	RecordLogin(ok bool)
	RecordRegistration()
	RecordTaskMutation(op string)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	logins        *prometheus.CounterVec
	registrations prometheus.Counter
	taskMutations *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taskboard_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskboard_registrations_total",
			Help: "Successful user registrations.",
		}),
		taskMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_task_mutations_total",
			Help: "Successful task writes by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.logins,
		c.registrations,
		c.taskMutations,
	)

	return c
}

func (c *Collector) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	c.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (c *Collector) RecordLogin(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordTaskMutation counts a successful create, update or delete.
func (c *Collector) RecordTaskMutation(op string) {
	c.taskMutations.WithLabelValues(op).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) ObserveRequest(string, string, int, time.Duration) {}
func (Nop) RecordLogin(bool)                                  {}
func (Nop) RecordRegistration()                               {}
func (Nop) RecordTaskMutation(string)                         {}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Middleware records one observation per request under route. route should
// be the mux pattern, not the raw path, to keep label cardinality bounded.
func Middleware(rec Recorder, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			rec.ObserveRequest(route, r.Method, sw.status, time.Since(start))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
