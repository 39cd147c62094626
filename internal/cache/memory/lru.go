package memory

import (
	"container/list"
	"sync"
	"time"

	"github.com/Gunvolt24/tma_shop/pkg/metrics"
)

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// Options — параметры LRU-кэша.
type Options[V any] struct {
	Name     string        // метка cache в метриках
	Capacity int           // <= 0 — один элемент
	TTL      time.Duration // <= 0 — без истечения
	Sliding  bool          // продлевать TTL при попадании
	Clone    func(V) V     // копия значения на входе и выходе; nil — без копирования
}

// LRUCacheTTL — потокобезопасный LRU с TTL.
type LRUCacheTTL[K comparable, V any] struct {
	name     string
	capacity int
	ttl      time.Duration
	sliding  bool
	clone    func(V) V
	now      func() time.Time

	ll    *list.List
	index map[K]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL[K comparable, V any](opts Options[V]) *LRUCacheTTL[K, V] {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = 1
	}
	clone := opts.Clone
	if clone == nil {
		clone = func(v V) V { return v }
	}
	name := opts.Name
	if name == "" {
		name = "default"
	}
	return &LRUCacheTTL[K, V]{
		name:     name,
		capacity: capacity,
		ttl:      opts.TTL,
		sliding:  opts.Sliding,
		clone:    clone,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[K]*list.Element),
	}
}

func (c *LRUCacheTTL[K, V]) Get(key K) (V, bool) {
	var zero V
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.name, "miss").Inc()
		return zero, false
	}
	ent := elem.Value.(*entry[K, V])
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
		c.removeElement(elem)
		c.reportSize()
		return zero, false
	}
	c.ll.MoveToFront(elem)

	if c.sliding {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues(c.name, "hit").Inc()
	return c.clone(ent.value), true
}

func (c *LRUCacheTTL[K, V]) Set(key K, value V) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry[K, V])
		ent.value = c.clone(value)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry[K, V]{
		key:       key,
		value:     c.clone(value),
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem
	c.reportSize()

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
}

// Delete — удалить ключ; отсутствие ключа не ошибка.
func (c *LRUCacheTTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.removeElement(elem)
		c.reportSize()
	}
}

func (c *LRUCacheTTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
