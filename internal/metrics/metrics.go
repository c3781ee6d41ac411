package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the web frontend
type Metrics struct {
	APIRequests   *prometheus.CounterVec
	APILatency    *prometheus.HistogramVec
	PageRenders   *prometheus.CounterVec
	LoginAttempts *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nikofree_web_api_requests_total",
			Help: "Requests made to the backend API, labeled by endpoint and status class",
		}, []string{"endpoint", "status"}),
		APILatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nikofree_web_api_latency_seconds",
			Help:    "Latency of backend API requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nikofree_web_page_renders_total",
			Help: "Rendered pages, labeled by page and outcome",
		}, []string{"page", "outcome"}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nikofree_web_login_attempts_total",
			Help: "Login attempts, labeled by role and outcome",
		}, []string{"role", "outcome"}),
	}

	if reg != nil {
		reg.MustRegister(m.APIRequests, m.APILatency, m.PageRenders, m.LoginAttempts)
	}
	return m
}

// NewNoop returns collectors that are not registered anywhere, for tests
func NewNoop() *Metrics {
	return New(nil)
}

// StatusClass buckets an HTTP status code ("2xx", "4xx", ...). Zero means
// the request never got a response.
func StatusClass(code int) string {
	switch {
	case code == 0:
		return "error"
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// ObservePage counts a rendered page
func (m *Metrics) ObservePage(page, outcome string) {
	if m == nil {
		return
	}
	m.PageRenders.WithLabelValues(page, outcome).Inc()
}

// ObserveLogin counts a login attempt
func (m *Metrics) ObserveLogin(role, outcome string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(role, outcome).Inc()
}
