// Package metrics exports order statistics as Prometheus gauges.
package metrics

import (
	"printflow/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds the gauges fed by the status summary job.
type OrderMetrics struct {
	ordersTotal    prometheus.Gauge
	ordersByStatus *prometheus.GaugeVec
}

// NewOrderMetrics registers the order gauges with reg.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	factory := promauto.With(reg)
	return &OrderMetrics{
		ordersTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "printflow_orders_total",
			Help: "Number of orders in the portal",
		}),
		ordersByStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "printflow_orders",
				Help: "Number of orders per lifecycle status",
			},
			[]string{"status"},
		),
	}
}

// RecordSummary sets the gauges from one status summary.
func (m *OrderMetrics) RecordSummary(summary queries.GetStatusSummaryQueryResponse) {
	m.ordersTotal.Set(float64(summary.Total))
	for _, c := range summary.ByStatus {
		m.ordersByStatus.WithLabelValues(c.Status.String()).Set(float64(c.Count))
	}
}
