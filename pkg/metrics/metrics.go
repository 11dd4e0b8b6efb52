package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Бизнес-метрики бронирований
	BookingsCreatedTotal prometheus.Counter
	BookingsDeniedTotal  *prometheus.CounterVec
	BookingsByStatus     *prometheus.GaugeVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served",
			ConstLabels: constLabels,
		}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of admitted bookings",
			ConstLabels: constLabels,
		}),

		BookingsDeniedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_denied_total",
			Help:        "Total number of denied booking requests by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		BookingsByStatus: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "bookings_by_status",
			Help:        "Current number of bookings per status",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}
}

// BookingCreated инкрементирует счетчик допущенных бронирований
func (m *Metrics) BookingCreated() {
	m.BookingsCreatedTotal.Inc()
}

// BookingDenied инкрементирует счетчик отказов по причине
func (m *Metrics) BookingDenied(reason string) {
	m.BookingsDeniedTotal.WithLabelValues(reason).Inc()
}

// SetBookingsByStatus выставляет gauge количества бронирований в статусе
func (m *Metrics) SetBookingsByStatus(status string, count int) {
	m.BookingsByStatus.WithLabelValues(status).Set(float64(count))
}

// Причины отказа в бронировании для метрики bookings_denied_total
const (
	DenyReasonIncompatible = "incompatible_capability"
	DenyReasonUnavailable  = "outside_availability"
	DenyReasonConflict     = "scheduling_conflict"
)

// Noop заглушка бизнес-метрик для запуска с отключенным сбором
type Noop struct{}

func (Noop) BookingCreated() {}
func (Noop) BookingDenied(string) {}
func (Noop) SetBookingsByStatus(string, int) {}
