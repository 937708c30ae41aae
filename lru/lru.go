// Package lru is a size-bounded least recently used cache.
//
// An xlist.List cannot unlink an element from the middle, so recency is kept
// lazily: every hit appends a fresh record for the key and the older record
// of that key goes stale. Eviction pops records from the front and skips
// stale ones. The queue is rebuilt once stale records outnumber live keys.
//
// A Cache is not safe for concurrent use.
package lru

import (
	"github.com/smartwalle/xlist"
)

const kCompactSlack = 64

type record[K comparable] struct {
	key K
	seq uint64
}

type element[V any] struct {
	value V
	seq   uint64
}

type Cache[K comparable, V any] struct {
	size      int
	seq       uint64
	queue     *xlist.List[record[K]]
	elements  map[K]element[V]
	onEvicted func(K, V)
	opts      []xlist.Option
}

func New[K comparable, V any](size int, opts ...xlist.Option) *Cache[K, V] {
	if size <= 0 {
		size = 512
	}
	var nLRU = &Cache[K, V]{}
	nLRU.size = size
	nLRU.opts = opts
	nLRU.queue = xlist.New[record[K]](append([]xlist.Option{xlist.WithCapacity(size)}, opts...)...)
	nLRU.elements = make(map[K]element[V], size)
	return nLRU
}

func (this *Cache[K, V]) Set(key K, value V) {
	var _, found = this.elements[key]
	this.touch(key, value)
	if !found && len(this.elements) > this.size {
		this.removeOldest()
	}
	this.compact()
}

func (this *Cache[K, V]) Exists(key K) bool {
	var _, found = this.elements[key]
	return found
}

func (this *Cache[K, V]) Get(key K) (value V, ok bool) {
	if ele, found := this.elements[key]; found {
		this.touch(key, ele.value)
		this.compact()
		return ele.value, true
	}
	return
}

// Peek returns the value of key without making it the most recent.
func (this *Cache[K, V]) Peek(key K) (value V, ok bool) {
	if ele, found := this.elements[key]; found {
		return ele.value, true
	}
	return
}

func (this *Cache[K, V]) Del(key K) {
	if ele, found := this.elements[key]; found {
		this.removeElement(key, ele)
		this.compact()
	}
}

func (this *Cache[K, V]) Len() int {
	return len(this.elements)
}

// Keys returns the keys from least to most recently used.
func (this *Cache[K, V]) Keys() []K {
	var keys = make([]K, 0, len(this.elements))
	for rec := range this.queue.All() {
		if this.live(rec) {
			keys = append(keys, rec.key)
		}
	}
	return keys
}

func (this *Cache[K, V]) OnEvicted(fn func(key K, value V)) {
	this.onEvicted = fn
}

func (this *Cache[K, V]) touch(key K, value V) {
	this.seq++
	this.elements[key] = element[V]{value: value, seq: this.seq}
	this.queue.PushBack(record[K]{key: key, seq: this.seq})
}

func (this *Cache[K, V]) live(rec record[K]) bool {
	var ele, found = this.elements[rec.key]
	return found && ele.seq == rec.seq
}

func (this *Cache[K, V]) removeOldest() {
	for {
		var rec, err = this.queue.PopFront()
		if err != nil {
			return
		}
		if this.live(rec) {
			this.removeElement(rec.key, this.elements[rec.key])
			return
		}
	}
}

func (this *Cache[K, V]) removeElement(key K, ele element[V]) {
	delete(this.elements, key)

	if this.onEvicted != nil {
		this.onEvicted(key, ele.value)
	}
}

func (this *Cache[K, V]) compact() {
	if this.queue.Len() <= 2*len(this.elements)+kCompactSlack {
		return
	}

	var queue = xlist.New[record[K]](append([]xlist.Option{xlist.WithCapacity(this.size)}, this.opts...)...)
	for rec := range this.queue.All() {
		if this.live(rec) {
			queue.PushBack(rec)
		}
	}
	// corruption is reported through the queue's logger
	_ = this.queue.Release()
	this.queue = queue
}
