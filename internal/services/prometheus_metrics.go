package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricTransactionRecorded     = "transaction.recorded"
	MetricTransactionRecordFailed = "transaction.record_failed"
	MetricTransactionRecordTime   = "transaction.record"
	MetricTransactionAmount       = "transaction.amount"
	MetricEventPublishFailed      = "event.publish_failed"
	MetricHistoryRequest          = "history.request"
	MetricStatsRequest            = "stats.request"
)

type PrometheusMetrics struct {
	transactionsRecorded *prometheus.CounterVec
	recordDuration       prometheus.Histogram
	transactionAmount    *prometheus.HistogramVec
	eventPublishFailures prometheus.Counter
	historyRequests      *prometheus.CounterVec
	statsRequests        *prometheus.CounterVec
}

// NewPrometheusMetrics registers the business metrics with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type", "status"},
		),
		recordDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_record_duration_milliseconds",
				Help:    "Duration of recording a transaction with its rollups in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_amount",
				Help:    "Recorded transaction amounts in currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"type"},
		),
		eventPublishFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "event_publish_failures_total",
				Help: "Total number of domain events that could not be published",
			},
		),
		historyRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "history_requests_total",
				Help: "Total number of history series built",
			},
			[]string{"timeframe"},
		),
		statsRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stats_requests_total",
				Help: "Total number of stats queries",
			},
			[]string{"kind"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionRecorded:
		m.transactionsRecorded.WithLabelValues(tags["type"], "success").Inc()
	case MetricTransactionRecordFailed:
		m.transactionsRecorded.WithLabelValues(tags["type"], "failed_"+tags["reason"]).Inc()
	case MetricEventPublishFailed:
		m.eventPublishFailures.Inc()
	case MetricHistoryRequest:
		if tf := tags["timeframe"]; tf != "" {
			m.historyRequests.WithLabelValues(tf).Inc()
		}
	case MetricStatsRequest:
		if kind := tags["kind"]; kind != "" {
			m.statsRequests.WithLabelValues(kind).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricTransactionRecordTime:
		m.recordDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricTransactionAmount:
		m.transactionAmount.WithLabelValues(tags["type"]).Observe(value)
	}
}
