package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds checkout service counters.
type Metrics struct {
	registry *prometheus.Registry

	OrdersCreated prometheus.Counter
	Verifications *prometheus.CounterVec
}

// Verification outcome label values.
const (
	ResultVerified = "verified"
	ResultRejected = "rejected"
)

// New builds metrics on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_orders_created_total",
		Help: "Number of provider payment orders created.",
	})
	verifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_payment_verifications_total",
		Help: "Number of payment verification attempts by outcome.",
	}, []string{"result"})

	registry.MustRegister(ordersCreated, verifications)

	return &Metrics{
		registry:      registry,
		OrdersCreated: ordersCreated,
		Verifications: verifications,
	}
}

// Handler exposes the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
