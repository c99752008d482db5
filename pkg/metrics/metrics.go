package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus для HTTP, БД и назначения персонала
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueryDuration     *prometheus.HistogramVec
	DBQueryErrorsTotal  *prometheus.CounterVec
	DBOpenConnections   *prometheus.GaugeVec
	DBInUseConnections  *prometheus.GaugeVec
	DBIdleConnections   *prometheus.GaugeVec
	DBWaitCount         *prometheus.GaugeVec
	DBTransactionsTotal *prometheus.CounterVec

	// Staff assignment
	StaffAssignedTotal   *prometheus.CounterVec
	SlotConflictsTotal   *prometheus.CounterVec
	EmptyAssignmentTotal *prometheus.CounterVec
}

// New регистрирует коллекторы в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует коллекторы в указанном реестре (для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBTransactionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_transactions_total",
			Help:        "Total number of finished transactions",
			ConstLabels: constLabels,
		}, []string{"result"}),

		StaffAssignedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "staff_assigned_total",
			Help:        "Total number of staff assignment rows created",
			ConstLabels: constLabels,
		}, []string{"booking_type"}),

		SlotConflictsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_conflicts_total",
			Help:        "Total number of calendar actions rejected because of a slot conflict",
			ConstLabels: constLabels,
		}, []string{"action"}),

		EmptyAssignmentTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "empty_assignment_total",
			Help:        "Total number of reservations left without eligible staff",
			ConstLabels: constLabels,
		}, []string{"booking_type"}),
	}
}

// ObserveAssignment учитывает результат назначения персонала
// Безопасен для nil-получателя (метрики выключены)
func (m *Metrics) ObserveAssignment(bookingType string, assigned int) {
	if m == nil {
		return
	}
	if assigned == 0 {
		m.EmptyAssignmentTotal.WithLabelValues(bookingType).Inc()
		return
	}
	m.StaffAssignedTotal.WithLabelValues(bookingType).Add(float64(assigned))
}

// ObserveConflict учитывает отклонённое из-за конфликта действие
func (m *Metrics) ObserveConflict(action string) {
	if m == nil {
		return
	}
	m.SlotConflictsTotal.WithLabelValues(action).Inc()
}
