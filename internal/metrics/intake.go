// Package metrics holds domain counters exported next to the HTTP metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	KindContact  = "contact"
	KindWaitlist = "waitlist"

	OutcomeCreated   = "created"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// IntakeMetrics counts submission outcomes. A nil *IntakeMetrics is valid and
// records nothing, which is what services get when metrics are disabled.
type IntakeMetrics struct {
	submissions *prometheus.CounterVec
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	if reg == nil {
		return nil
	}

	m := &IntakeMetrics{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_submissions_total",
				Help: "Total number of contact and waitlist submissions by outcome.",
			},
			[]string{"kind", "outcome"},
		),
	}

	reg.MustRegister(m.submissions)
	return m
}

func (m *IntakeMetrics) Record(kind, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(kind, outcome).Inc()
}
