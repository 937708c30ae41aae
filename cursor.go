package xlist

import (
	"github.com/smartwalle/xlist/internal"
)

// Cursor is a position in a List together with the neighbour it was reached
// from. The pair encodes the direction of travel: advancing always moves
// away from the neighbour it came from.
//
// Any PushFront, PushBack, PopFront, PopBack, Clear or Release invalidates
// every cursor taken before it; a stale cursor returns ErrStaleCursor.
// Reverse does not invalidate cursors.
//
// A forward loop:
//
//	for c, end := l.Begin(), l.End(); !c.Equal(end); c.Advance() {
//		v, _ := c.Value()
//		...
//	}
type Cursor[T any] struct {
	list    *List[T]
	cur     internal.Ref
	from    internal.Ref
	forward bool
	version uint64
}

func (l *List[T]) cursor(cur, from internal.Ref) Cursor[T] {
	return Cursor[T]{list: l, cur: cur, from: from, forward: true, version: l.version}
}

// Begin returns a cursor on the first element, or one equal to End if the
// list is empty.
func (l *List[T]) Begin() Cursor[T] {
	l.lazyInit()
	return l.cursor(l.store.Neighbor(l.head, internal.Nil), l.head)
}

// End returns the cursor a forward traversal from Begin stops at.
func (l *List[T]) End() Cursor[T] {
	l.lazyInit()
	return l.cursor(l.tail, l.store.Neighbor(l.tail, internal.Nil))
}

// RBegin returns a cursor on the last element that advances towards the
// front.
func (l *List[T]) RBegin() Cursor[T] {
	l.lazyInit()
	return l.cursor(l.store.Neighbor(l.tail, internal.Nil), l.tail)
}

// REnd returns the cursor a traversal from RBegin stops at.
func (l *List[T]) REnd() Cursor[T] {
	l.lazyInit()
	return l.cursor(l.head, l.store.Neighbor(l.head, internal.Nil))
}

func (c *Cursor[T]) check() error {
	if c.list == nil || c.list.store == nil || c.version != c.list.version {
		return ErrStaleCursor
	}
	return nil
}

// Advance moves the cursor one node further in its direction of travel.
// Advancing off a sentinel leaves the cursor past the end, where it can no
// longer move.
func (c *Cursor[T]) Advance() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.cur == internal.Nil || c.from == internal.Nil {
		return ErrNullDereference
	}
	var store = c.list.store
	if !store.Contains(c.cur) {
		return c.list.fail(corrupted("cursor on ref %d", c.cur))
	}
	c.cur, c.from = store.Neighbor(c.cur, c.from), c.cur
	return nil
}

// Flip turns the cursor around without advancing: the neighbour it came from
// becomes its position. Two flips in a row cancel out.
func (c *Cursor[T]) Flip() error {
	if err := c.check(); err != nil {
		return err
	}
	c.cur, c.from = c.from, c.cur
	c.forward = !c.forward
	return nil
}

// Next steps forward: it turns a cursor that was last stepped with Prev,
// otherwise it advances.
func (c *Cursor[T]) Next() error {
	if !c.forward {
		return c.Flip()
	}
	return c.Advance()
}

// Prev steps backward: it turns a cursor that was last stepped with Next,
// otherwise it advances.
func (c *Cursor[T]) Prev() error {
	if c.forward {
		return c.Flip()
	}
	return c.Advance()
}

// Forward reports whether the cursor was last stepped with Next.
func (c Cursor[T]) Forward() bool {
	return c.forward
}

// Value returns a copy of the element under the cursor.
func (c *Cursor[T]) Value() (T, error) {
	return deref[T](c.Ptr())
}

// Ptr returns the element under the cursor in place. The pointer is valid
// until the next mutation of the list.
func (c *Cursor[T]) Ptr() (*T, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	var l = c.list
	if c.cur == internal.Nil || c.cur == l.head || c.cur == l.tail {
		return nil, ErrNullDereference
	}
	if !l.store.Contains(c.cur) {
		return nil, l.fail(corrupted("cursor on ref %d", c.cur))
	}
	return &l.store.Node(c.cur).Value, nil
}

// Equal reports whether both cursors sit on the same node having arrived
// from the same neighbour. Cursors on one node heading in opposite
// directions are not equal.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.list == o.list && c.cur == o.cur && c.from == o.from
}
