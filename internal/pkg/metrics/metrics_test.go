//go:build unit

package metrics_test

import (
	"net/http/httptest"
	"testing"

	"salon-booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T, c *metrics.Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	return rec.Body.String()
}

func TestCollector_Records(t *testing.T) {
	c := metrics.NewCollector("salon", prometheus.NewRegistry())

	c.AvailabilityChecked("available")
	c.AvailabilityChecked("available")
	c.AvailabilityChecked("booked")
	c.AppointmentCreated()
	c.BookingConflict()
	c.StatusChanged("cancelled")
	c.NotificationDispatched("appointment.confirmed", "sent")
	c.ReminderQueued("hourly")

	body := scrape(t, c)
	assert.Contains(t, body, `salon_booking_availability_checks_total{result="available"} 2`)
	assert.Contains(t, body, `salon_booking_availability_checks_total{result="booked"} 1`)
	assert.Contains(t, body, `salon_booking_appointments_created_total 1`)
	assert.Contains(t, body, `salon_booking_conflicts_total 1`)
	assert.Contains(t, body, `salon_booking_status_changes_total{status="cancelled"} 1`)
	assert.Contains(t, body, `salon_notification_dispatched_total{result="sent",topic="appointment.confirmed"} 1`)
	assert.Contains(t, body, `salon_notification_reminders_queued_total{kind="hourly"} 1`)
}

func TestCollector_SeparateRegistries(t *testing.T) {
	a := metrics.NewCollector("salon", prometheus.NewRegistry())
	b := metrics.NewCollector("salon", prometheus.NewRegistry())
	a.AppointmentCreated()

	assert.Contains(t, scrape(t, a), "salon_booking_appointments_created_total 1")
	assert.Contains(t, scrape(t, b), "salon_booking_appointments_created_total 0")
}

func TestNoop_SatisfiesRecorder(t *testing.T) {
	var r metrics.Recorder = metrics.Noop{}
	r.AppointmentCreated()
	r.NotificationDispatched("t", "sent")
}
