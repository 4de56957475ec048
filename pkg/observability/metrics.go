package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the validation collectors.
type Metrics struct {
	validations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zabbix_import_validations_total",
				Help: "Total number of validated documents",
			},
			[]string{"version", "direction", "outcome", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "zabbix_import_validation_duration_seconds",
				Help:    "Duration of document validation",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
			[]string{"version", "direction"},
		),
	}
	for _, c := range []prometheus.Collector{m.validations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks recording every finished call.
func (m *Metrics) Hooks() LifecycleHooks {
	return LifecycleHooks{
		OnValidateDone: func(_ context.Context, e *ValidationEvent) {
			m.validations.WithLabelValues(e.Version, string(e.Direction), e.Outcome(), e.Kind).Inc()
			m.duration.WithLabelValues(e.Version, string(e.Direction)).Observe(e.Duration.Seconds())
		},
	}
}
