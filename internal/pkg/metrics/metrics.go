package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salon_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AppointmentsBooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salon_appointments_booked_total",
			Help: "Appointments created in pending state",
		},
	)

	SlotConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_slot_conflicts_total",
			Help: "Booking attempts rejected because the slot was taken",
		},
		[]string{"source"}, // precheck, constraint
	)

	AppointmentTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_appointment_transitions_total",
			Help: "Appointment status transitions by target status",
		},
		[]string{"status"},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)
)

func RecordHTTPRequest(method, route, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func RecordBooking() {
	AppointmentsBooked.Inc()
}

func RecordSlotConflict(source string) {
	SlotConflicts.WithLabelValues(source).Inc()
}

func RecordTransition(status string) {
	AppointmentTransitions.WithLabelValues(status).Inc()
}

func RecordRateLimited(route string) {
	RateLimited.WithLabelValues(route).Inc()
}
