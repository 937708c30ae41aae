package lru_test

import (
	"testing"

	"github.com/smartwalle/xlist/lru"
)

func equal[K comparable](got, want []K) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestCache_EvictLeastRecentlyUsed(t *testing.T) {
	var evicted []string
	var c = lru.New[string, int](3)
	c.OnEvicted(func(key string, value int) {
		evicted = append(evicted, key)
	})

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("Get(a) missed")
	}
	c.Set("d", 4)

	if !equal(evicted, []string{"b"}) {
		t.Fatalf("evicted %v, want [b]", evicted)
	}
	if got := c.Keys(); !equal(got, []string{"c", "a", "d"}) {
		t.Fatalf("Keys() = %v, want [c a d]", got)
	}

	c.Set("c", 30)
	c.Set("e", 5)
	if !equal(evicted, []string{"b", "a"}) {
		t.Fatalf("evicted %v, want [b a]", evicted)
	}
	if v, ok := c.Peek("c"); !ok || v != 30 {
		t.Fatalf("Peek(c) = %d, %t, want 30, true", v, ok)
	}
}

func TestCache_PeekDoesNotPromote(t *testing.T) {
	var c = lru.New[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Peek(1)
	c.Set(3, 3)

	if c.Exists(1) {
		t.Fatal("Peek promoted the key")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}

func TestCache_DelAndCompact(t *testing.T) {
	var c = lru.New[int, int](4)
	var evicted int
	c.OnEvicted(func(int, int) { evicted++ })

	c.Set(-1, -1)
	for i := 0; i < 1000; i++ {
		c.Get(-1)
		c.Set(i, i)
		c.Del(i)
	}

	if evicted != 1000 {
		t.Fatalf("OnEvicted called %d times, want 1000", evicted)
	}
	if got := c.Keys(); !equal(got, []int{-1}) {
		t.Fatalf("Keys() = %v, want [-1]", got)
	}
	if v, ok := c.Get(-1); !ok || v != -1 {
		t.Fatalf("Get(-1) = %d, %t", v, ok)
	}
}

func TestCache_DefaultSize(t *testing.T) {
	var c = lru.New[int, int](0)
	for i := 0; i < 600; i++ {
		c.Set(i, i)
	}
	if c.Len() != 512 {
		t.Fatalf("Len() = %d, want 512", c.Len())
	}
	if c.Exists(87) || !c.Exists(88) {
		t.Fatal("evicted the wrong keys")
	}
}

func BenchmarkCache_SetIntString(b *testing.B) {
	var m = lru.New[int, string](1000000)
	m.OnEvicted(func(key int, value string) {
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(i, "hello")
	}
}
