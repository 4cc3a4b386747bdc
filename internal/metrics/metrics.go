package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Número total de pagos por estado",
		},
		[]string{"status"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_amounts",
			Help:    "Distribución de montos de pagos",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"currency"},
	)

	FraudChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fraud_checks_total",
			Help: "Número total de chequeos antifraude",
		},
		[]string{"status"},
	)

	WebhookAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_attempts_total",
			Help: "Intentos de entrega de webhooks por resultado",
		},
		[]string{"outcome"},
	)

	WebhookRedeliveriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_redeliveries_total",
			Help: "Entregas reprogramadas por el barrido periódico",
		},
	)
)

var registerOnce sync.Once

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			PaymentsTotal,
			PaymentAmounts,
			FraudChecksTotal,
			WebhookAttemptsTotal,
			WebhookRedeliveriesTotal,
		)
	})
}
