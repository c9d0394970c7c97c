package store

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/footadmin/footadmin/pkg/types"
)

// Metrics counts store activity. A nil *Metrics records nothing.
type Metrics struct {
	operations  *prometheus.CounterVec
	skippedRows *prometheus.CounterVec
	auxFailures *prometheus.CounterVec
}

// NewMetrics creates the store counters and registers them with reg when
// reg is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "footadmin",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by entity kind, operation and result.",
		}, []string{"kind", "op", "result"}),
		skippedRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "footadmin",
			Subsystem: "store",
			Name:      "skipped_rows_total",
			Help:      "Malformed rows dropped while loading a table.",
		}, []string{"kind"}),
		auxFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "footadmin",
			Subsystem: "store",
			Name:      "aux_write_failures_total",
			Help:      "History or trash appends that failed after a committed mutation.",
		}, []string{"kind", "target"}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.skippedRows, m.auxFailures)
	}
	return m
}

func (m *Metrics) observe(kind, op string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(kind, op, resultLabel(err)).Inc()
}

func (m *Metrics) skipped(kind string) {
	if m == nil {
		return
	}
	m.skippedRows.WithLabelValues(kind).Inc()
}

func (m *Metrics) auxFailed(kind, target string) {
	if m == nil {
		return
	}
	m.auxFailures.WithLabelValues(kind, target).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case types.IsWarning(err):
		return "warning"
	case errors.Is(err, types.ErrNotFound):
		return "not_found"
	case errors.Is(err, types.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, types.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
