// Package xlist implements a doubly linked list that keeps a single link per
// node: the XOR of the identities of its two neighbours.
//
// Nodes live in an arena and are identified by 32-bit slot refs, so a node
// spends four bytes on links where a pointer-based list spends sixteen. The
// price is that a node cannot be reached on its own: you always need the
// neighbour you arrived from. Traversal therefore goes through a Cursor,
// which remembers both.
//
// Because a link names an unordered pair of neighbours, Reverse only swaps
// the two sentinels and runs in constant time.
//
// A List is not safe for concurrent use and must not be copied after first
// use. Use Clone to get an independent copy.
package xlist

import (
	"iter"

	"github.com/smartwalle/xlist/internal"
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// List is a doubly linked list of T. The zero value is an empty list ready
// to use.
type List[T any] struct {
	noCopy noCopy

	addr    *List[T]
	opts    *options
	store   *internal.Store[T]
	head    internal.Ref
	tail    internal.Ref
	len     int
	version uint64
}

func New[T any](opts ...Option) *List[T] {
	var l = &List[T]{}
	l.addr = l
	l.opts = newOptions(opts...)
	l.init()
	return l
}

func (l *List[T]) init() {
	if l.opts == nil {
		l.opts = newOptions()
	}
	var empty T
	l.store = internal.NewStore[T](l.opts.capacity + 2)
	l.head = l.store.Alloc(internal.Nil, empty)
	l.tail = l.store.Alloc(l.head, empty)
	l.store.Node(l.head).Link = l.tail
	l.len = 0
	l.version++
	l.opts.count(keyAlloc, 2)
}

func (l *List[T]) lazyInit() {
	l.copyCheck()
	if l.store == nil {
		l.init()
	}
}

func (l *List[T]) copyCheck() {
	if l.addr == nil {
		l.addr = l
	} else if l.addr != l {
		panic("xlist: illegal use of non-zero List copied by value")
	}
}

// Len returns the number of elements. The complexity is O(1).
func (l *List[T]) Len() int {
	return l.len
}

// Front returns a copy of the first element.
func (l *List[T]) Front() (T, error) {
	return deref[T](l.FrontPtr())
}

// Back returns a copy of the last element.
func (l *List[T]) Back() (T, error) {
	return deref[T](l.BackPtr())
}

// FrontPtr returns the first element in place. The pointer is valid until
// the next mutation of the list.
func (l *List[T]) FrontPtr() (*T, error) {
	return l.peek(l.head, l.tail)
}

// BackPtr returns the last element in place. The pointer is valid until the
// next mutation of the list.
func (l *List[T]) BackPtr() (*T, error) {
	return l.peek(l.tail, l.head)
}

func (l *List[T]) peek(s, opposite internal.Ref) (*T, error) {
	l.copyCheck()
	if l.store == nil {
		return nil, ErrEmpty
	}
	var r, err = l.inner(s)
	if err != nil {
		return nil, err
	}
	if r == opposite {
		return nil, ErrEmpty
	}
	return &l.store.Node(r).Value, nil
}

func (l *List[T]) PushFront(value T) {
	l.insert(l.head, value)
}

func (l *List[T]) PushBack(value T) {
	l.insert(l.tail, value)
}

// insert links a new node between sentinel s and its inner neighbour. It
// panics on a corrupted list: the node would be linked into a chain that can
// no longer be walked.
func (l *List[T]) insert(s internal.Ref, value T) {
	l.lazyInit()

	var b, err = l.inner(s)
	if err != nil {
		panic(err)
	}

	var a = s
	var n = l.store.Alloc(a^b, value)
	l.store.Node(a).Link ^= b ^ n
	l.store.Node(b).Link ^= a ^ n

	l.len++
	l.version++
	l.opts.count(keyAlloc, 1)
}

// PopFront removes the first element and returns it.
func (l *List[T]) PopFront() (T, error) {
	return l.remove(l.head, l.tail)
}

// PopBack removes the last element and returns it.
func (l *List[T]) PopBack() (T, error) {
	return l.remove(l.tail, l.head)
}

func (l *List[T]) remove(s, opposite internal.Ref) (value T, err error) {
	l.copyCheck()
	if l.store == nil {
		return value, ErrEmpty
	}

	var r internal.Ref
	if r, err = l.inner(s); err != nil {
		return value, err
	}
	if r == opposite {
		return value, ErrEmpty
	}

	var c = l.store.Neighbor(r, s)
	if !l.store.Contains(c) {
		return value, l.fail(corrupted("node %d next to the %s resolves to ref %d", r, l.side(s), c))
	}

	value = l.store.Node(r).Value
	l.store.Node(s).Link ^= r ^ c
	l.store.Node(c).Link ^= r ^ s
	l.store.Release(r)

	l.len--
	l.version++
	l.opts.count(keyRelease, 1)
	return value, nil
}

// Reverse reverses the order of the list in O(1) by swapping the roles of
// the two sentinels. No link is rewritten, so cursors stay valid.
func (l *List[T]) Reverse() {
	l.copyCheck()
	l.head, l.tail = l.tail, l.head
}

// Clear removes every element. The complexity is O(n).
//
// If the chain turns out to be broken, Clear stops walking it, drops the
// whole arena, and returns an error wrapping ErrCorrupted. The list is empty
// and usable afterwards in both cases.
func (l *List[T]) Clear() error {
	l.copyCheck()
	if l.store == nil {
		return nil
	}

	var n, err = l.drain()
	l.opts.count(keyRelease, n)
	if err != nil {
		l.abandon()
		return err
	}

	l.store.Node(l.head).Link = l.tail
	l.store.Node(l.tail).Link = l.head
	l.len = 0
	l.version++
	l.opts.logger.Trace("list cleared", "released", n)
	return nil
}

// Release frees every node, sentinels included, and leaves l as a zero List.
//
// A missing sentinel is reported without walking the chain at all. Nodes that
// could not be reached are not released.
func (l *List[T]) Release() error {
	l.copyCheck()
	if l.store == nil {
		return nil
	}
	defer l.abandon()

	if !l.store.Contains(l.head) || !l.store.Contains(l.tail) {
		return l.fail(corrupted("sentinel missing (head %d, tail %d)", l.head, l.tail))
	}

	var n, err = l.drain()
	l.opts.count(keyRelease, n)
	if err != nil {
		return err
	}

	l.store.Release(l.head)
	l.store.Release(l.tail)
	l.opts.count(keyRelease, 2)
	l.opts.logger.Trace("list released", "released", n)
	return nil
}

// drain releases every node between the sentinels and returns how many it
// released.
func (l *List[T]) drain() (int, error) {
	var n, err = l.walk(l.head, l.tail, func(r internal.Ref) {
		l.store.Release(r)
	})
	if err != nil {
		return n, err
	}
	if n != l.len {
		return n, l.fail(corrupted("released %d nodes, list holds %d", n, l.len))
	}
	return n, nil
}

func (l *List[T]) abandon() {
	l.store = nil
	l.head = internal.Nil
	l.tail = internal.Nil
	l.len = 0
	l.version++
}

// walk visits the nodes from sentinel s to the opposite sentinel. The
// neighbour is resolved before fn runs, so fn may release the node.
func (l *List[T]) walk(s, opposite internal.Ref, fn func(r internal.Ref)) (int, error) {
	var cur, err = l.inner(s)
	if err != nil {
		return 0, err
	}

	var prev = s
	var limit = l.store.Live()
	var n = 0
	for cur != opposite {
		if !l.store.Contains(cur) {
			return n, l.fail(corrupted("walk from the %s reached ref %d after %d nodes", l.side(s), cur, n))
		}
		if n >= limit {
			return n, l.fail(corrupted("walk from the %s did not reach the %s after %d nodes", l.side(s), l.side(opposite), n))
		}
		var next = l.store.Neighbor(cur, prev)
		fn(cur)
		prev, cur = cur, next
		n++
	}
	return n, nil
}

// inner returns the neighbour of sentinel s.
func (l *List[T]) inner(s internal.Ref) (internal.Ref, error) {
	if !l.store.Contains(s) {
		return internal.Nil, l.fail(corrupted("sentinel ref %d is out of the arena", s))
	}
	var r = l.store.Neighbor(s, internal.Nil)
	if !l.store.Contains(r) {
		return internal.Nil, l.fail(corrupted("%s points to ref %d", l.side(s), r))
	}
	return r, nil
}

func (l *List[T]) side(s internal.Ref) string {
	switch s {
	case l.head:
		return "head"
	case l.tail:
		return "tail"
	}
	return "node"
}

func (l *List[T]) fail(err error) error {
	l.opts.logger.Error("list corrupted", "len", l.len, "error", err)
	return err
}

// Clone returns a deep copy of l sharing l's options.
func (l *List[T]) Clone() *List[T] {
	l.lazyInit()

	var opts = *l.opts
	opts.capacity = l.len

	var c = &List[T]{}
	c.addr = c
	c.opts = &opts
	c.init()
	for v := range l.All() {
		c.PushBack(v)
	}
	return c
}

// Values returns the elements from front to back.
func (l *List[T]) Values() []T {
	var values = make([]T, 0, l.len)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// All iterates from front to back. Mutating the list while iterating panics.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		each(l.Begin(), l.End(), yield)
	}
}

// Backward iterates from back to front. Mutating the list while iterating
// panics.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		each(l.RBegin(), l.REnd(), yield)
	}
}

func each[T any](c, end Cursor[T], yield func(T) bool) {
	for !c.Equal(end) {
		var v, err = c.Value()
		if err != nil {
			panic(err)
		}
		if !yield(v) {
			return
		}
		if err = c.Advance(); err != nil {
			panic(err)
		}
	}
}

func deref[T any](p *T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}
