package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// Each instance owns its registry so tests can build as many routers as they want.
type Metrics struct {
	registry *prometheus.Registry

	ModerationCalls   *prometheus.CounterVec
	ModerationLatency *prometheus.HistogramVec
	ModerationRetries prometheus.Counter
	PeopleCreated     prometheus.Counter
	AccountsCreated   prometheus.Counter
	Logins            *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ModerationCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "people_moderation_calls_total",
			Help: "Moderation calls by tier (plain|backoff) and outcome (ok|error|cached)",
		}, []string{"tier", "outcome"}),
		ModerationLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "people_moderation_duration_seconds",
			Help:    "Latency of moderation calls including retries",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"tier"}),
		ModerationRetries: f.NewCounter(prometheus.CounterOpts{
			Name: "people_moderation_retries_total",
			Help: "Retries issued against the moderation provider",
		}),
		PeopleCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "people_people_created_total",
			Help: "Total number of people created",
		}),
		AccountsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "people_accounts_created_total",
			Help: "Total number of accounts registered",
		}),
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "people_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
	}
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveModeration registra una llamada al proveedor. Tolera receptor nil.
func (m *Metrics) ObserveModeration(tier, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.ModerationCalls.WithLabelValues(tier, outcome).Inc()
	if outcome != "cached" {
		m.ModerationLatency.WithLabelValues(tier).Observe(took.Seconds())
	}
}

func (m *Metrics) IncModerationRetries() {
	if m == nil {
		return
	}
	m.ModerationRetries.Inc()
}

func (m *Metrics) IncPeopleCreated() {
	if m == nil {
		return
	}
	m.PeopleCreated.Inc()
}

func (m *Metrics) IncAccountsCreated() {
	if m == nil {
		return
	}
	m.AccountsCreated.Inc()
}

func (m *Metrics) IncLogins(outcome string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(outcome).Inc()
}
