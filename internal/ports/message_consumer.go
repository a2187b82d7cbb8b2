package ports

import "context"

// MessageConsumer — фоновый источник запросов на прогрев кэша (Kafka).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
