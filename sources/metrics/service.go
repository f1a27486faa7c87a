package metrics

import (
	"okakbot/sources/tracing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type MetricsService struct {
	log *tracing.Logger
}

var (
	messagesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "okakbot_messages_handled_total",
			Help: "Total number of messages handled by the poller",
		},
		[]string{"status"},
	)

	decisionsMade = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "okakbot_decisions_total",
			Help: "Total number of reply decisions by branch and reason",
		},
		[]string{"branch", "reason"},
	)

	messagesThrottled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "okakbot_messages_throttled_total",
			Help: "Total number of replies suppressed by the chat throttler",
		},
	)

	repliesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "okakbot_replies_sent_total",
			Help: "Total number of replies sent by the diplomat",
		},
		[]string{"kind", "status"},
	)

	messageProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "okakbot_message_processing_duration_seconds",
			Help:    "Total duration of message processing",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(messagesHandled)
	prometheus.MustRegister(decisionsMade)
	prometheus.MustRegister(messagesThrottled)
	prometheus.MustRegister(repliesSent)
	prometheus.MustRegister(messageProcessingDuration)
}

func NewMetricsService(log *tracing.Logger) *MetricsService {
	return &MetricsService{
		log: log,
	}
}

func (s *MetricsService) RecordMessageHandled(status string) {
	messagesHandled.WithLabelValues(status).Inc()
}

func (s *MetricsService) RecordDecision(branch, reason string) {
	decisionsMade.WithLabelValues(branch, reason).Inc()
}

func (s *MetricsService) RecordThrottled() {
	messagesThrottled.Inc()
}

func (s *MetricsService) RecordReplySent(kind, status string) {
	repliesSent.WithLabelValues(kind, status).Inc()
}

func (s *MetricsService) RecordMessageProcessingDuration(duration time.Duration) {
	messageProcessingDuration.Observe(duration.Seconds())
}
