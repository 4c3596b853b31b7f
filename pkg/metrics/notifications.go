package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// NotificationMetrics records handler runs and individual email sends.
type NotificationMetrics struct {
	duration *prometheus.HistogramVec
	handled  *prometheus.CounterVec
	emails   *prometheus.CounterVec
}

// NewNotificationMetrics registers the notification metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewNotificationMetrics(reg prometheus.Registerer) *NotificationMetrics {
	if reg == nil {
		return &NotificationMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "notification_duration_seconds",
		Help:    "Duration of notification handler runs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	handled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_handled_total",
		Help: "Notification handler runs by kind and outcome.",
	}, []string{"kind", "outcome"})
	emails := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_emails_total",
		Help: "Email dispatch attempts by recipient role and outcome.",
	}, []string{"role", "outcome"})
	reg.MustRegister(duration, handled, emails)
	return &NotificationMetrics{
		duration: duration,
		handled:  handled,
		emails:   emails,
	}
}

// ObserveHandled records one handler run.
func (m *NotificationMetrics) ObserveHandled(kind string, err error, duration time.Duration) {
	if m == nil || m.handled == nil {
		return
	}
	kind = normalizeLabel(kind)
	m.duration.WithLabelValues(kind).Observe(duration.Seconds())
	m.handled.WithLabelValues(kind, outcome(err)).Inc()
}

// ObserveEmail records one dispatch attempt for the given recipient role.
func (m *NotificationMetrics) ObserveEmail(role string, err error) {
	if m == nil || m.emails == nil {
		return
	}
	m.emails.WithLabelValues(normalizeLabel(role), outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
