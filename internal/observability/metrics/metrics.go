package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulingMetrics exposes counters for the booking and cascade flows.
type SchedulingMetrics struct {
	bookingsTotal    *prometheus.CounterVec
	discardsTotal    prometheus.Counter
	slotQueriesTotal *prometheus.CounterVec
}

func NewSchedulingMetrics(reg prometheus.Registerer) *SchedulingMetrics {
	m := &SchedulingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quicklic",
			Subsystem: "scheduling",
			Name:      "bookings_total",
			Help:      "Booking attempts by result",
		}, []string{"result"}),
		discardsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quicklic",
			Subsystem: "scheduling",
			Name:      "discards_total",
			Help:      "Appointments discarded by schedule changes",
		}),
		slotQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quicklic",
			Subsystem: "scheduling",
			Name:      "slot_queries_total",
			Help:      "Slot view queries by cache outcome",
		}, []string{"cache"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.discardsTotal, m.slotQueriesTotal)
	return m
}

func (m *SchedulingMetrics) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(result).Inc()
}

func (m *SchedulingMetrics) ObserveDiscards(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.discardsTotal.Add(float64(n))
}

func (m *SchedulingMetrics) ObserveSlotQuery(cacheHit bool) {
	if m == nil {
		return
	}
	label := "miss"
	if cacheHit {
		label = "hit"
	}
	m.slotQueriesTotal.WithLabelValues(label).Inc()
}
