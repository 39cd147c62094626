package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/tma_shop/pkg/metrics"
)

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL[K, V]) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(c.name, "evicted").Inc()
		c.reportSize()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUCacheTTL[K, V]) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry[K, V]); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
}

func (c *LRUCacheTTL[K, V]) isExpired(ent *entry[K, V], now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *LRUCacheTTL[K, V]) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
// С Sliding хвост не обязательно истекает первым, так что это чистка «по пути», а не полная.
func (c *LRUCacheTTL[K, V]) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry[K, V])
		if !ok || now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
			c.reportSize()
			continue
		}
		return
	}
}

func (c *LRUCacheTTL[K, V]) reportSize() {
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
}
