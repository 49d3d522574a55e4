package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	service string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	AvailabilityChecks    *prometheus.CounterVec
	CatalogFallbacks      *prometheus.CounterVec
	OverbookingRejections *prometheus.CounterVec
	LedgerChanges         *prometheus.CounterVec
}

// New регистрирует метрики в глобальном registry (его отдаёт promhttp.Handler)
func New(service string) *Metrics {
	return NewWithRegisterer(service, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном registry
// Используется в тестах, чтобы не ловить duplicate registration
func NewWithRegisterer(service string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		service: service,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency by operation",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBOpenConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Open connections in the pool",
		}, []string{"service"}),

		DBInUseConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Idle connections in the pool",
		}, []string{"service"}),

		AvailabilityChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_checks_total",
			Help: "Availability checks by result",
		}, []string{"service", "room_type", "result"}),

		CatalogFallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_catalog_fallbacks_total",
			Help: "Availability checks that used heuristic capacity for an unknown room",
		}, []string{"service", "room_id"}),

		OverbookingRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "overbooking_rejections_total",
			Help: "Write attempts rejected because the room had no capacity",
		}, []string{"service", "operation"}),

		LedgerChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_changes_total",
			Help: "Committed ledger writes by operation",
		}, []string{"service", "operation"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauges connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.DBOpenConnections.WithLabelValues(m.service).Set(float64(open))
	m.DBInUseConnections.WithLabelValues(m.service).Set(float64(inUse))
	m.DBIdleConnections.WithLabelValues(m.service).Set(float64(idle))
}

// ObserveAvailabilityCheck фиксирует результат проверки доступности
func (m *Metrics) ObserveAvailabilityCheck(roomType string, available bool) {
	result := "available"
	if !available {
		result = "unavailable"
	}
	m.AvailabilityChecks.WithLabelValues(m.service, roomType, result).Inc()
}

// ObserveCatalogFallback фиксирует использование эвристической вместимости
func (m *Metrics) ObserveCatalogFallback(roomID string) {
	m.CatalogFallbacks.WithLabelValues(m.service, roomID).Inc()
}

// ObserveOverbookingRejection фиксирует отказ в записи из-за отсутствия мест
func (m *Metrics) ObserveOverbookingRejection(operation string) {
	m.OverbookingRejections.WithLabelValues(m.service, operation).Inc()
}

// ObserveLedgerChange фиксирует успешную запись в журнал бронирований
func (m *Metrics) ObserveLedgerChange(operation string) {
	m.LedgerChanges.WithLabelValues(m.service, operation).Inc()
}
