package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/dogbreeds/internal/domain"
	"github.com/Gunvolt24/dogbreeds/pkg/metrics"
)

// breedFromMessage — значение сообщения как имя породы; сообщение без значения — отсутствующее имя.
func breedFromMessage(msg *kafka.Message) domain.Breed {
	if msg.Value == nil {
		return domain.AbsentBreed()
	}
	return domain.BreedOf(string(msg.Value))
}

// handleMessage обрабатывает одно сообщение и определяет нужно ли коммитить оффсет.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	breed := breedFromMessage(msg)

	if breed.Valid && c.validator != nil {
		if err := c.validator.Validate(ctx, breed.Name); err != nil {
			// Мусор во входных данных: коммитим, чтобы не обрабатывать повторно
			metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
			c.log.Warnf(ctx, "invalid breed name offset=%d: %v (skipped)", msg.Offset, err)
			return true
		}
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	subBreeds, err := c.lookup.Lookup(ctxTimeout, breed)
	cancel()

	switch {
	case err == nil:
		// Кэш прогрет: фиксируем метрику и коммитим оффсет
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		c.log.Infof(ctx, "breed warmed offset=%d breed=%s sub_breeds=%d", msg.Offset, breed.Key(), len(subBreeds))
		return true
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		// Не дождались ответа: порода может существовать, НЕ коммитим
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "lookup timed out offset=%d breed=%s: %v (will retry without commit)", msg.Offset, breed.Key(), err)
		return false
	case errors.Is(err, domain.ErrBreedNotFound):
		// Порода не найдена: повтор ничего не даст, коммитим
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "breed not found offset=%d breed=%s: %v (skipped)", msg.Offset, breed.Key(), err)
		return true
	default:
		// Прочие ошибки: НЕ коммитим - будем обрабатывать повторно
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "process failed offset=%d: %v (will retry without commit)", msg.Offset, err)
		return false
	}
}

// commitSafely пытается закоммитить оффсет и залогировать ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — умеренная случайность: половина задержки фиксирована,
// вторая половина — случайная. Баланс между стабильностью и случайностью.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

// minDuration возвращает минимальное время из двух.
func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
