package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	accountOperations  *prometheus.CounterVec
	paymentsRecorded   prometheus.Counter
	accountsReordered  prometheus.Counter
	bankfeedLinked     prometheus.Counter
	bankfeedRefreshes  *prometheus.CounterVec
	bankfeedRefreshAll prometheus.Counter
	refreshDuration    prometheus.Histogram
	upcomingPayments   prometheus.Gauge
	totalAmountOwed    prometheus.Gauge
	apiErrorsTotal     *prometheus.CounterVec
	requestsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		accountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_operations_total",
				Help: "Total number of account CRUD operations",
			},
			[]string{"operation"},
		),
		paymentsRecorded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_recorded_total",
				Help: "Total number of payments recorded against accounts",
			},
		),
		accountsReordered: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "accounts_reordered_total",
				Help: "Total number of dashboard reorder operations",
			},
		),
		bankfeedLinked: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bankfeed_accounts_linked_total",
				Help: "Total number of accounts linked to a bank feed",
			},
		),
		bankfeedRefreshes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankfeed_refreshes_total",
				Help: "Total number of single-account bank feed refreshes",
			},
			[]string{"status"},
		),
		bankfeedRefreshAll: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bankfeed_refresh_all_total",
				Help: "Total number of portfolio-wide refresh passes",
			},
		),
		refreshDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bankfeed_refresh_duration_milliseconds",
				Help:    "Bank feed refresh duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		upcomingPayments: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "upcoming_payments",
				Help: "Number of entries in the most recently built payment schedule",
			},
		),
		totalAmountOwed: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "total_amount_owed",
				Help: "Aggregate amount owed in the most recently computed summary",
			},
		),
		apiErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by error code",
			},
			[]string{"code"},
		),
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method and status",
			},
			[]string{"method", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "account_created":
		m.accountOperations.WithLabelValues("create").Inc()
	case "account_updated":
		m.accountOperations.WithLabelValues("update").Inc()
	case "account_deleted":
		m.accountOperations.WithLabelValues("delete").Inc()
	case "payment_recorded":
		m.paymentsRecorded.Inc()
	case "accounts_reordered":
		m.accountsReordered.Inc()
	case "bankfeed_linked":
		m.bankfeedLinked.Inc()
	case "bankfeed_refresh":
		if status := tags["status"]; status != "" {
			m.bankfeedRefreshes.WithLabelValues(status).Inc()
		}
	case "bankfeed_refresh_all":
		m.bankfeedRefreshAll.Inc()
	case "api_error":
		if code := tags["code"]; code != "" {
			m.apiErrorsTotal.WithLabelValues(code).Inc()
		}
	case "http_request":
		m.requestsTotal.WithLabelValues(tags["method"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "bankfeed_refresh":
		m.refreshDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "upcoming_payments":
		m.upcomingPayments.Set(value)
	case "total_amount_owed":
		m.totalAmountOwed.Set(value)
	}
}
