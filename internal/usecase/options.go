package usecase

import (
	"context"
	"time"

	"github.com/Gunvolt24/dogbreeds/internal/ports"
)

type options struct {
	log      ports.Logger
	capacity int
	ttl      time.Duration
}

// Option — функциональная опция CachingLookup.
type Option func(*options)

// WithLogger — логгер для попаданий/промахов и ошибок источника.
func WithLogger(log ports.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithCapacity — ограничить кэш n записями (LRU). n <= 0 — без ограничения.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithTTL — скользящий срок жизни записи. ttl <= 0 — записи не истекают.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

type nopLogger struct{}

func (nopLogger) Infof(_ context.Context, _ string, _ ...any)  {}
func (nopLogger) Warnf(_ context.Context, _ string, _ ...any)  {}
func (nopLogger) Errorf(_ context.Context, _ string, _ ...any) {}
