package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StockMetrics counts stock adjustment outcomes per direction.
type StockMetrics struct {
	adjustments *prometheus.CounterVec
	quantity    *prometheus.CounterVec
}

// NewStockMetrics registers the adjustment metrics on the provided registerer.
func NewStockMetrics(reg prometheus.Registerer) *StockMetrics {
	if reg == nil {
		return &StockMetrics{}
	}
	adjustments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_adjustments_total",
		Help: "Committed and rejected stock adjustments by kind and outcome.",
	}, []string{"kind", "outcome"})
	quantity := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_units_moved_total",
		Help: "Units moved by committed adjustments, by kind.",
	}, []string{"kind"})
	reg.MustRegister(adjustments, quantity)
	return &StockMetrics{
		adjustments: adjustments,
		quantity:    quantity,
	}
}

// IncCommitted records one committed adjustment of qty units.
func (s *StockMetrics) IncCommitted(kind string, qty int) {
	if s == nil {
		return
	}
	kind = normalizeLabel(kind)
	if s.adjustments != nil {
		s.adjustments.WithLabelValues(kind, "committed").Inc()
	}
	if s.quantity != nil && qty > 0 {
		s.quantity.WithLabelValues(kind).Add(float64(qty))
	}
}

// IncRejected records one rejected adjustment.
func (s *StockMetrics) IncRejected(kind string) {
	if s == nil || s.adjustments == nil {
		return
	}
	s.adjustments.WithLabelValues(normalizeLabel(kind), "rejected").Inc()
}
