package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "court_booking"

// Metrics owns a dedicated registry so tests can build as many as they need.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	bookingsCreated    prometheus.Counter
	bookingsCancelled  prometheus.Counter
	bookingConflicts   prometheus.Counter
	validationFailures prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings stored.",
		}),
		bookingsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "Bookings cancelled.",
		}),
		bookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Booking attempts rejected because the slot was taken.",
		}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_validation_failures_total",
			Help:      "Booking attempts rejected by validation.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.bookingsCreated,
		m.bookingsCancelled,
		m.bookingConflicts,
		m.validationFailures,
	)
	return m
}

func (m *Metrics) BookingCreated()   { m.bookingsCreated.Inc() }
func (m *Metrics) BookingCancelled() { m.bookingsCancelled.Inc() }
func (m *Metrics) BookingConflict()  { m.bookingConflicts.Inc() }
func (m *Metrics) BookingRejected()  { m.validationFailures.Inc() }
