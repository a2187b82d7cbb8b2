package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/dogbreeds/internal/cache/memory"
	"github.com/Gunvolt24/dogbreeds/internal/domain"
	"github.com/Gunvolt24/dogbreeds/internal/ports"
)

// CachingLookup — декоратор над BreedProvider: запоминает успешные ответы
// по нормализованному имени породы и считает обращения к источнику.
// Ошибки источника не кэшируются.
type CachingLookup struct {
	provider ports.BreedProvider
	cache    *memory.SubBreedCache
	log      ports.Logger

	flights singleflight.Group
	calls   atomic.Int64
}

var _ ports.SubBreedLookup = (*CachingLookup)(nil)

// NewCachingLookup — DI-конструктор. Кэш создаётся здесь и принадлежит только этому экземпляру.
func NewCachingLookup(provider ports.BreedProvider, opts ...Option) (*CachingLookup, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: breed provider is nil", domain.ErrInvalidArgument)
	}

	o := options{log: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	return &CachingLookup{
		provider: provider,
		cache:    memory.NewSubBreedCache(o.capacity, o.ttl),
		log:      o.log,
	}, nil
}

// Lookup — подпороды: сначала из кэша, при промахе — из источника с записью в кэш.
// Одновременные промахи по одному ключу дают одно обращение к источнику.
// Обращение не зависит от отмены ctx первого вызова: каждый ждёт результат
// только в пределах своего ctx.
func (l *CachingLookup) Lookup(ctx context.Context, breed domain.Breed) ([]string, error) {
	key := breed.Key()

	if subBreeds, found := l.cache.Get(ctx, key); found {
		l.log.Infof(ctx, "cache hit for breed=%s", key)
		return subBreeds, nil
	}
	l.log.Infof(ctx, "cache miss for breed=%s", key)

	flight := l.flights.DoChan(key.String(), func() (any, error) {
		// Ключ мог заполнить предыдущий flight, завершившийся после нашего Get.
		if subBreeds, found := l.cache.Peek(key); found {
			return subBreeds, nil
		}
		return l.fetch(context.WithoutCancel(ctx), breed, key)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrBreedNotFound, breed, ctx.Err())
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		// Результат общий для всех участников flight — каждому своя копия.
		return cloneList(res.Val.([]string)), nil
	}
}

// LookupName — Lookup для присутствующего имени.
func (l *CachingLookup) LookupName(ctx context.Context, name string) ([]string, error) {
	return l.Lookup(ctx, domain.BreedOf(name))
}

// CallsMade — сколько раз вызывался источник (успешно или нет).
func (l *CachingLookup) CallsMade() int {
	return int(l.calls.Load())
}

// WarmUp — прогрев кэша списком имён. Ошибки логируются и пропускаются.
// Возвращает число имён, для которых в кэше есть результат.
func (l *CachingLookup) WarmUp(ctx context.Context, names []string) int {
	if len(names) == 0 {
		return 0
	}

	start := time.Now()
	cached := 0
	for _, name := range names {
		if ctx.Err() != nil {
			l.log.Warnf(ctx, "cache warm-up interrupted: %v", ctx.Err())
			break
		}
		if _, err := l.LookupName(ctx, name); err != nil {
			l.log.Warnf(ctx, "cache warm-up skipped breed=%q err=%v", name, err)
			continue
		}
		cached++
	}
	l.log.Infof(ctx, "cache warmed with %d/%d breeds in %s", cached, len(names), time.Since(start))
	return cached
}

func (l *CachingLookup) fetch(ctx context.Context, breed domain.Breed, key domain.CacheKey) ([]string, error) {
	l.calls.Add(1)

	start := time.Now()
	subBreeds, err := l.provider.SubBreeds(ctx, breed)
	if err != nil {
		l.log.Warnf(ctx, "provider.SubBreeds failed breed=%s err=%v", key, err)
		return nil, err
	}

	l.cache.Set(ctx, key, subBreeds)
	l.log.Infof(ctx, "provider fetch breed=%s sub_breeds=%d took=%s", key, len(subBreeds), time.Since(start))

	return cloneList(subBreeds), nil
}

func cloneList(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
