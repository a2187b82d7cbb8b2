package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of warm-up messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of warm-up messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of warm-up messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Sub-breed cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of breeds currently cached, summed over all cache instances",
		},
	)
)

var (
	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "breed_provider_requests_total",
			Help: "Requests to the upstream breed API",
		},
		[]string{"result"}, // ok|not_found
	)
	ProviderLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "breed_provider_request_duration_seconds",
			Help:    "Latency of upstream breed API requests in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)
)

// MustRegister — регистрирует коллекторы в глобальном реестре.
// Повторная регистрация (тесты, несколько CLI-инстансов) не считается ошибкой.
func MustRegister() {
	for _, c := range []prometheus.Collector{
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize,
		ProviderRequests, ProviderLatency,
	} {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			panic(err)
		}
	}
}
