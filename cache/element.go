package cache

type Element[V any] struct {
	value      V
	expiration int64
	seq        uint64
}

func (this *Element[V]) expired(now int64) bool {
	return this.expiration > 0 && now >= this.expiration
}

// record is what the eviction queue holds. It is stale once the key has been
// deleted or set again, which shows as a different seq.
type record[K comparable] struct {
	key K
	seq uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}
