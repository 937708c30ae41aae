package xlist

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned by Front, Back, PopFront and PopBack on a list
	// without elements.
	ErrEmpty = errors.New("xlist: list is empty")

	// ErrNullDereference is returned when a cursor positioned on a sentinel,
	// or moved past one, is read or advanced.
	ErrNullDereference = errors.New("xlist: null dereference")

	// ErrStaleCursor is returned when a cursor is used after the list it was
	// taken from has been mutated.
	ErrStaleCursor = errors.New("xlist: cursor invalidated by list mutation")

	// ErrCorrupted reports a broken link chain. There is no redundant link to
	// repair it from, so it is never recovered.
	ErrCorrupted = errors.New("xlist: list has been corrupted")
)

func corrupted(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorrupted, format, args...)
}
