package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/dogbreeds/pkg/metrics"
)

// evictLRU — удаляет наименее используемую запись.
func (c *SubBreedCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
// cache_size — сумма по всем экземплярам, поэтому только дельты.
func (c *SubBreedCache) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
	metrics.CacheSize.Dec()
}

// isExpired — проверяет истечение TTL.
func (c *SubBreedCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — момент истечения для текущего времени (нулевой, если TTL выключен).
func (c *SubBreedCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет истёкшие записи с хвоста до первой актуальной.
func (c *SubBreedCache) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if !ok {
			c.removeElement(back)
			continue
		}
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			continue
		}
		return
	}
}

// cloneSubBreeds — независимая копия списка; nil превращается в пустой список.
func cloneSubBreeds(subBreeds []string) []string {
	out := make([]string, len(subBreeds))
	copy(out, subBreeds)
	return out
}
