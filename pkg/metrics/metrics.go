package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы запросов к внешним сервисам
const (
	OutcomeSuccess   = "success"
	OutcomeError     = "error"
	OutcomeSkipped   = "skipped"
	OutcomeConfirmed = "confirmed"
	OutcomeRejected  = "rejected"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя, что позволяет отключать метрики
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	quoteRequestsTotal  *prometheus.CounterVec
	quotesDiscarded     *prometheus.CounterVec
	bookingAttempts     *prometheus.CounterVec
	activeSessions      *prometheus.GaugeVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		registry:    prometheus.NewRegistry(),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		quoteRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quote_requests_total",
				Help: "Quote requests to the pricing service by outcome",
			},
			[]string{"service", "outcome"},
		),
		quotesDiscarded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quote_responses_discarded_total",
				Help: "Quote responses dropped because a newer draft generation exists",
			},
			[]string{"service"},
		),
		bookingAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_attempts_total",
				Help: "Booking commits by outcome",
			},
			[]string{"service", "outcome"},
		),
		activeSessions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "form_sessions_active",
				Help: "Number of live booking form sessions",
			},
			[]string{"service"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.quoteRequestsTotal,
		m.quotesDiscarded,
		m.bookingAttempts,
		m.activeSessions,
	)

	return m
}

// Handler возвращает http.Handler для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveQuote фиксирует исход запроса расчёта стоимости
func (m *Metrics) ObserveQuote(outcome string) {
	if m == nil {
		return
	}
	m.quoteRequestsTotal.WithLabelValues(m.serviceName, outcome).Inc()
}

// IncQuoteDiscarded фиксирует отброшенный устаревший ответ
func (m *Metrics) IncQuoteDiscarded() {
	if m == nil {
		return
	}
	m.quotesDiscarded.WithLabelValues(m.serviceName).Inc()
}

// ObserveBooking фиксирует исход попытки бронирования
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingAttempts.WithLabelValues(m.serviceName, outcome).Inc()
}

// SetActiveSessions обновляет количество активных сессий
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.WithLabelValues(m.serviceName).Set(float64(n))
}
