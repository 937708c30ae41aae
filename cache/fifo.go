package cache

import (
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/smartwalle/xlist"
)

const kCompactSlack = 64

// fifoCache keeps entries in a map and their insertion order in an
// xlist.List. Every entry gets the same TTL, so the front of the queue is
// always the next entry to expire and the next one to evict.
//
// The list is not safe for concurrent use; mu guards it together with the
// map.
type fifoCache[K comparable, V any] struct {
	mu        sync.Mutex
	options   *options
	logger    hclog.Logger
	elements  map[K]Element[V]
	queue     *xlist.List[record[K]]
	seq       uint64
	empty     V
	onEvicted func(K, V)
}

func newFIFO[K comparable, V any](opts *options) *fifoCache[K, V] {
	var c = &fifoCache[K, V]{}
	c.options = opts
	c.logger = opts.logger.Named("cache")
	c.elements = make(map[K]Element[V], opts.capacity)
	c.queue = c.newQueue(opts.capacity)
	return c
}

func (c *fifoCache[K, V]) newQueue(capacity int) *xlist.List[record[K]] {
	return xlist.New[record[K]](
		xlist.WithCapacity(capacity),
		xlist.WithLogger(c.logger.Named("queue")),
		xlist.WithMetrics(c.options.metrics),
	)
}

func (c *fifoCache[K, V]) now() int64 {
	return c.options.timeProvider().UnixNano()
}

func (c *fifoCache[K, V]) Set(key K, value V) {
	var ele = Element[V]{}
	ele.value = value
	if c.options.ttl > 0 {
		ele.expiration = c.now() + int64(c.options.ttl)
	}

	c.mu.Lock()
	c.seq++
	ele.seq = c.seq
	c.elements[key] = ele
	c.queue.PushBack(record[K]{key: key, seq: ele.seq})

	var evicted []entry[K, V]
	for c.options.capacity > 0 && len(c.elements) > c.options.capacity {
		var e, ok = c.popLive()
		if !ok {
			break
		}
		evicted = append(evicted, e)
	}
	c.compact()
	var onEvicted = c.onEvicted
	c.mu.Unlock()

	c.options.count(keyEvict, len(evicted))
	notify(onEvicted, evicted)
}

func (c *fifoCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	var ele, found = c.elements[key]
	c.mu.Unlock()

	if !found || ele.expired(c.now()) {
		return c.empty, false
	}
	return ele.value, true
}

func (c *fifoCache[K, V]) Exists(key K) bool {
	var _, found = c.Get(key)
	return found
}

func (c *fifoCache[K, V]) Del(key K) {
	c.mu.Lock()
	var ele, found = c.elements[key]
	if !found {
		c.mu.Unlock()
		return
	}
	delete(c.elements, key)
	c.compact()
	var onEvicted = c.onEvicted
	c.mu.Unlock()

	if onEvicted != nil {
		onEvicted(key, ele.value)
	}
}

// Len returns the number of entries, expired ones not yet swept included.
func (c *fifoCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.elements)
}

func (c *fifoCache[K, V]) OnEvicted(fn func(key K, value V)) {
	c.mu.Lock()
	c.onEvicted = fn
	c.mu.Unlock()
}

// Sweep removes expired entries from the front of the queue.
func (c *fifoCache[K, V]) Sweep() {
	var now = c.now()
	var expired []entry[K, V]

	c.mu.Lock()
	for {
		var front, err = c.queue.FrontPtr()
		if err != nil {
			break
		}
		var ele, found = c.elements[front.key]
		if found && ele.seq == front.seq {
			if !ele.expired(now) {
				break
			}
			delete(c.elements, front.key)
			expired = append(expired, entry[K, V]{key: front.key, value: ele.value})
		}
		if _, err = c.queue.PopFront(); err != nil {
			c.logger.Error("pop expired record", "error", err)
			break
		}
	}
	var onEvicted = c.onEvicted
	c.mu.Unlock()

	if len(expired) > 0 {
		c.logger.Trace("swept expired entries", "count", len(expired))
	}
	c.options.count(keyExpire, len(expired))
	notify(onEvicted, expired)
}

// popLive pops records until one still backs an entry, and removes that
// entry.
func (c *fifoCache[K, V]) popLive() (entry[K, V], bool) {
	for {
		var rec, err = c.queue.PopFront()
		if err != nil {
			return entry[K, V]{}, false
		}
		var ele, found = c.elements[rec.key]
		if !found || ele.seq != rec.seq {
			continue
		}
		delete(c.elements, rec.key)
		c.logger.Trace("evicted oldest entry", "key", rec.key)
		return entry[K, V]{key: rec.key, value: ele.value}, true
	}
}

// compact rebuilds the queue without stale records once they outnumber the
// live ones.
func (c *fifoCache[K, V]) compact() {
	if c.queue.Len() <= 2*len(c.elements)+kCompactSlack {
		return
	}

	var queue = c.newQueue(len(c.elements))
	for rec := range c.queue.All() {
		if ele, found := c.elements[rec.key]; found && ele.seq == rec.seq {
			queue.PushBack(rec)
		}
	}
	if err := c.queue.Release(); err != nil {
		c.logger.Error("release eviction queue", "error", err)
	}
	c.logger.Trace("compacted eviction queue", "live", queue.Len())
	c.queue = queue
}

func (c *fifoCache[K, V]) close() {
	c.mu.Lock()
	var evicted = make([]entry[K, V], 0, len(c.elements))
	for rec := range c.queue.All() {
		if ele, found := c.elements[rec.key]; found && ele.seq == rec.seq {
			evicted = append(evicted, entry[K, V]{key: rec.key, value: ele.value})
		}
	}
	c.elements = make(map[K]Element[V])
	if err := c.queue.Release(); err != nil {
		c.logger.Error("release eviction queue", "error", err)
	}
	var onEvicted = c.onEvicted
	c.mu.Unlock()

	notify(onEvicted, evicted)
}

func notify[K comparable, V any](fn func(K, V), entries []entry[K, V]) {
	if fn == nil {
		return
	}
	for _, e := range entries {
		fn(e.key, e.value)
	}
}
