package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
)

const namespace = "vending"

// Metrics holds the vending counters and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	Purchases          *prometheus.CounterVec
	ShopsOpened        *prometheus.CounterVec
	ShopsClosed        *prometheus.CounterVec
	OpenShops          prometheus.Gauge
	PersistenceFailure *prometheus.CounterVec
	AutotradeReplays   *prometheus.CounterVec

	CircuitBreakerState *prometheus.GaugeVec
}

// New creates a Metrics instance on its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.Purchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Purchase attempts by outcome",
		},
		[]string{"outcome"},
	)
	m.ShopsOpened = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shops_opened_total",
			Help:      "Shops opened by seller kind",
		},
		[]string{"kind"},
	)
	m.ShopsClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shops_closed_total",
			Help:      "Shops closed by seller kind",
		},
		[]string{"kind"},
	)
	m.OpenShops = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_shops",
			Help:      "Shops currently registered",
		},
	)
	m.PersistenceFailure = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Durable writes that failed after the in-memory commit",
		},
		[]string{"op"},
	)
	m.AutotradeReplays = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "autotrade_replays_total",
			Help:      "Autotrader replays at boot by result",
		},
		[]string{"result"},
	)
	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	registry.MustRegister(
		m.Purchases,
		m.ShopsOpened,
		m.ShopsClosed,
		m.OpenShops,
		m.PersistenceFailure,
		m.AutotradeReplays,
		m.CircuitBreakerState,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) PurchaseFinished(outcome string) {
	m.Purchases.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ShopOpened(kind string) {
	m.ShopsOpened.WithLabelValues(kind).Inc()
}

func (m *Metrics) ShopClosed(kind string) {
	m.ShopsClosed.WithLabelValues(kind).Inc()
}

func (m *Metrics) PersistenceFailed(op string) {
	m.PersistenceFailure.WithLabelValues(op).Inc()
}

func (m *Metrics) AutotradeReplayed(result string) {
	m.AutotradeReplays.WithLabelValues(result).Inc()
}

func (m *Metrics) SetOpenShops(n int) {
	m.OpenShops.Set(float64(n))
}

func (m *Metrics) BreakerState(name string, state gobreaker.State) {
	var v float64
	switch state {
	case gobreaker.StateHalfOpen:
		v = 1
	case gobreaker.StateOpen:
		v = 2
	}
	m.CircuitBreakerState.WithLabelValues(name).Set(v)
}
