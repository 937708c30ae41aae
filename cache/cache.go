// Package cache is a bounded cache with one TTL for all entries. Entries are
// evicted oldest first, and expire oldest first, in the order kept by an
// xlist.List.
package cache

import (
	"runtime"

	"github.com/smartwalle/xlist/internal"
)

type Cache[K comparable, V any] interface {
	Set(key K, value V)

	Get(key K) (V, bool)

	Exists(key K) bool

	Del(key K)

	Len() int

	OnEvicted(func(key K, value V))

	Close()
}

type cacheWrapper[K comparable, V any] struct {
	*sharedCache[K, V]
}

func stopJanitor[K comparable, V any](c *cacheWrapper[K, V]) {
	c.close()
}

type sharedCache[K comparable, V any] struct {
	*fifoCache[K, V]
	janitor *internal.Janitor
}

func New[K comparable, V any](opts ...Option) Cache[K, V] {
	var o = newOptions(opts...)

	var sc = &sharedCache[K, V]{}
	sc.fifoCache = newFIFO[K, V](o)

	var janitor = internal.NewJanitor(o.cleanupInterval)
	go janitor.Run(sc)
	sc.janitor = janitor

	var c = &cacheWrapper[K, V]{}
	c.sharedCache = sc
	runtime.SetFinalizer(c, stopJanitor[K, V])

	return c
}

// Close stops the sweeper and evicts every entry.
func (this *sharedCache[K, V]) Close() {
	this.close()
}

func (this *sharedCache[K, V]) close() {
	this.janitor.Close()
	this.fifoCache.close()
}
