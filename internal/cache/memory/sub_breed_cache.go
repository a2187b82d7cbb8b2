package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/dogbreeds/internal/domain"
	"github.com/Gunvolt24/dogbreeds/pkg/metrics"
)

type entry struct {
	key       domain.CacheKey
	subBreeds []string
	expiresAt time.Time
}

// SubBreedCache — in-memory кэш подпород по нормализованному ключу.
// capacity <= 0 — без ограничения размера, ttl <= 0 — записи не истекают.
// Get/Set работают с копиями: снаружи нельзя изменить сохранённый список.
type SubBreedCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[domain.CacheKey]*list.Element

	now func() time.Time
	mu  sync.Mutex
}

func NewSubBreedCache(capacity int, ttl time.Duration) *SubBreedCache {
	if capacity < 0 {
		capacity = 0
	}
	return &SubBreedCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[domain.CacheKey]*list.Element),
		now:      time.Now,
	}
}

// Get — (копия, true) при попадании, (nil, false) при промахе/истечении.
func (c *SubBreedCache) Get(_ context.Context, key domain.CacheKey) ([]string, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneSubBreeds(ent.subBreeds), true
}

// Peek — повторная проверка без учёта в метриках и без продления TTL/LRU-позиции.
// Истёкшая запись считается отсутствующей.
func (c *SubBreedCache) Peek(key domain.CacheKey) ([]string, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		return nil, false
	}
	return cloneSubBreeds(ent.subBreeds), true
}

// Set — сохранить копию списка (полная замена существующей записи).
func (c *SubBreedCache) Set(_ context.Context, key domain.CacheKey, subBreeds []string) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.subBreeds = cloneSubBreeds(subBreeds)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		subBreeds: cloneSubBreeds(subBreeds),
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem
	metrics.CacheSize.Inc()

	if c.capacity > 0 && c.ll.Len() > c.capacity {
		c.evictLRU()
	}
}

// Len — текущее число записей (включая ещё не вычищенные истёкшие).
func (c *SubBreedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
