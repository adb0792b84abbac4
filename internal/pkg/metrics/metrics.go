package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dealswap"

// Registry owns every collector of the process. Nothing registers on the
// prometheus default registry so tests can build as many as they like.
type Registry struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	events    *prometheus.CounterVec
	outcomes  *prometheus.CounterVec
}

func NewRegistry() *Registry {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests processed.",
	}, []string{"route", "method", "status"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Domain events handed to the event publisher.",
	}, []string{"type", "result"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "engine_operations_total",
		Help:      "Engine operations by outcome code.",
	}, []string{"operation", "code"})

	registry.MustRegister(
		requests, durations, events, outcomes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		registry:  registry,
		requests:  requests,
		durations: durations,
		events:    events,
		outcomes:  outcomes,
	}
}

func (r *Registry) ObserveRequest(route, method, status string, seconds float64) {
	r.requests.WithLabelValues(route, method, status).Inc()
	r.durations.WithLabelValues(route, method).Observe(seconds)
}

func (r *Registry) EventPublished(eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.events.WithLabelValues(eventType, result).Inc()
}

func (r *Registry) Outcome(operation, code string) {
	r.outcomes.WithLabelValues(operation, code).Inc()
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
