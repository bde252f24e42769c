package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what use cases and workers report to.
type Recorder interface {
	AvailabilityChecked(result string)
	AppointmentCreated()
	BookingConflict()
	StatusChanged(status string)
	NotificationDispatched(topic, result string)
	ReminderQueued(kind string)
}

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	AvailabilityChecksTotal *prometheus.CounterVec
	AppointmentsCreated     prometheus.Counter
	BookingConflictsTotal   prometheus.Counter
	StatusChangesTotal      *prometheus.CounterVec

	NotificationsTotal *prometheus.CounterVec
	RemindersTotal     *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewCollector registers every metric on reg. A fresh registry per process
// (or per test) avoids duplicate registration panics.
func NewCollector(namespace string, reg *prometheus.Registry) *Collector {
	f := promauto.With(reg)
	return &Collector{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "path", "status"}),

		InFlightGauge: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		AvailabilityChecksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "availability_checks_total",
			Help:      "Availability checks by result.",
		}, []string{"result"}),

		AppointmentsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "appointments_created_total",
			Help:      "Total appointments booked.",
		}),

		BookingConflictsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "conflicts_total",
			Help:      "Bookings rejected by the overlap constraint after passing the pre-check.",
		}),

		StatusChangesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "status_changes_total",
			Help:      "Appointment status changes by new status.",
		}, []string{"status"}),

		NotificationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "dispatched_total",
			Help:      "Notification deliveries by topic and result.",
		}, []string{"topic", "result"}),

		RemindersTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "reminders_queued_total",
			Help:      "Reminders queued by job kind.",
		}, []string{"kind"}),

		gatherer: reg,
	}
}

func (c *Collector) AvailabilityChecked(result string) {
	c.AvailabilityChecksTotal.WithLabelValues(result).Inc()
}

func (c *Collector) AppointmentCreated() { c.AppointmentsCreated.Inc() }

func (c *Collector) BookingConflict() { c.BookingConflictsTotal.Inc() }

func (c *Collector) StatusChanged(status string) {
	c.StatusChangesTotal.WithLabelValues(status).Inc()
}

func (c *Collector) NotificationDispatched(topic, result string) {
	c.NotificationsTotal.WithLabelValues(topic, result).Inc()
}

func (c *Collector) ReminderQueued(kind string) {
	c.RemindersTotal.WithLabelValues(kind).Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Noop discards everything.
type Noop struct{}

func (Noop) AvailabilityChecked(string)            {}
func (Noop) AppointmentCreated()                   {}
func (Noop) BookingConflict()                      {}
func (Noop) StatusChanged(string)                  {}
func (Noop) NotificationDispatched(string, string) {}
func (Noop) ReminderQueued(string)                 {}
