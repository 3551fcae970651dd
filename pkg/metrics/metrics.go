// Package metrics содержит Prometheus-коллекторы сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics агрегирует все коллекторы сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal   *prometheus.CounterVec
	DBQueryDuration  *prometheus.HistogramVec
	DBPoolOpenConns  prometheus.Gauge
	DBPoolIdleConns  prometheus.Gauge
	DBPoolInUseConns prometheus.Gauge

	// Кэш доступности
	AvailabilityRefreshesTotal  *prometheus.CounterVec
	AvailabilityRefreshDuration prometheus.Histogram
	AvailabilityBookedDates     prometheus.Gauge

	// Бронирования
	BookingsCreatedTotal    prometheus.Counter
	BookingConflictsTotal   prometheus.Counter
	BookingFailuresTotal    prometheus.Counter
	BookingValidationErrors prometheus.Counter
}

// New регистрирует и возвращает коллекторы для указанного сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
		DBPoolOpenConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open connections in the pool",
			ConstLabels: labels,
		}),
		DBPoolIdleConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle connections in the pool",
			ConstLabels: labels,
		}),
		DBPoolInUseConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),

		AvailabilityRefreshesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_refreshes_total",
			Help:        "Total number of availability snapshot refreshes",
			ConstLabels: labels,
		}, []string{"trigger", "status"}),
		AvailabilityRefreshDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_refresh_duration_seconds",
			Help:        "Availability snapshot refresh duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
		AvailabilityBookedDates: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "availability_booked_dates",
			Help:        "Number of booked dates in the current snapshot",
			ConstLabels: labels,
		}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of successfully created bookings",
			ConstLabels: labels,
		}),
		BookingConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of duplicate-date booking conflicts",
			ConstLabels: labels,
		}),
		BookingFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_failures_total",
			Help:        "Total number of booking attempts failed for non-conflict reasons",
			ConstLabels: labels,
		}),
		BookingValidationErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_validation_errors_total",
			Help:        "Total number of booking attempts rejected by local validation",
			ConstLabels: labels,
		}),
	}
}
