package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the consultation flows.
type BookingMetrics struct {
	sessionsStarted   prometheus.Counter
	transitions       *prometheus.CounterVec
	payments          *prometheus.CounterVec
	paymentLatency    prometheus.Histogram
	bookingsConfirmed prometheus.Counter
	selections        *prometheus.CounterVec
	customerSearches  prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "astromarket",
			Subsystem: "brahma",
			Name:      "sessions_started_total",
			Help:      "Total Brahma booking sessions started",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astromarket",
			Subsystem: "brahma",
			Name:      "step_transitions_total",
			Help:      "Booking flow step transitions",
		}, []string{"from", "to"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astromarket",
			Subsystem: "brahma",
			Name:      "payments_total",
			Help:      "Payment attempts by outcome",
		}, []string{"outcome"}),
		paymentLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "astromarket",
			Subsystem: "brahma",
			Name:      "payment_latency_seconds",
			Help:      "Latency of payment processing",
			Buckets:   prometheus.DefBuckets,
		}),
		bookingsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "astromarket",
			Subsystem: "brahma",
			Name:      "bookings_confirmed_total",
			Help:      "Total confirmed consultations",
		}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astromarket",
			Subsystem: "sarthi",
			Name:      "selections_total",
			Help:      "Sarthi problem selections by mode",
		}, []string{"mode"}),
		customerSearches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "astromarket",
			Subsystem: "admin",
			Name:      "customer_searches_total",
			Help:      "Customer roster searches",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.sessionsStarted,
		m.transitions,
		m.payments,
		m.paymentLatency,
		m.bookingsConfirmed,
		m.selections,
		m.customerSearches,
	)
	return m
}

func (m *BookingMetrics) ObserveSessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

func (m *BookingMetrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *BookingMetrics) ObservePayment(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(outcome).Inc()
	m.paymentLatency.Observe(seconds)
}

func (m *BookingMetrics) ObserveBookingConfirmed() {
	if m == nil {
		return
	}
	m.bookingsConfirmed.Inc()
}

func (m *BookingMetrics) ObserveSelection(mode string) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(mode).Inc()
}

func (m *BookingMetrics) ObserveCustomerSearch() {
	if m == nil {
		return
	}
	m.customerSearches.Inc()
}
