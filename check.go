package xlist

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/smartwalle/xlist/internal"
)

// Check walks the list in both directions and verifies its invariants:
//
//   - both sentinels exist and the list is empty iff each sentinel links to
//     the other one;
//   - a walk from either sentinel reaches the other one after exactly Len
//     nodes, and the two walks visit the same nodes in opposite order;
//   - the arena holds exactly Len nodes plus the two sentinels.
//
// Every violation found is reported; the result is a *multierror.Error, or
// nil for a sound list.
func (l *List[T]) Check() error {
	l.copyCheck()

	var result *multierror.Error
	if l.store == nil {
		if l.len != 0 {
			result = multierror.Append(result, errors.Errorf("list without nodes holds %d elements", l.len))
		}
		return result.ErrorOrNil()
	}

	if !l.store.Contains(l.head) || !l.store.Contains(l.tail) {
		result = multierror.Append(result, corrupted("sentinel missing (head %d, tail %d)", l.head, l.tail))
		return result.ErrorOrNil()
	}

	var headEmpty = l.store.Neighbor(l.head, internal.Nil) == l.tail
	var tailEmpty = l.store.Neighbor(l.tail, internal.Nil) == l.head
	if headEmpty != tailEmpty {
		result = multierror.Append(result, errors.Errorf("sentinels disagree on emptiness (head %t, tail %t)", headEmpty, tailEmpty))
	}
	if headEmpty != (l.len == 0) {
		result = multierror.Append(result, errors.Errorf("head emptiness %t with %d elements", headEmpty, l.len))
	}

	var forward = make([]internal.Ref, 0, l.len)
	var n, err = l.walk(l.head, l.tail, func(r internal.Ref) {
		forward = append(forward, r)
	})
	if err != nil {
		result = multierror.Append(result, err)
	} else if n != l.len {
		result = multierror.Append(result, errors.Errorf("forward walk visited %d nodes, list holds %d", n, l.len))
	}

	var backward = make([]internal.Ref, 0, l.len)
	n, err = l.walk(l.tail, l.head, func(r internal.Ref) {
		backward = append(backward, r)
	})
	if err != nil {
		result = multierror.Append(result, err)
	} else if n != l.len {
		result = multierror.Append(result, errors.Errorf("backward walk visited %d nodes, list holds %d", n, l.len))
	}

	if len(forward) == len(backward) {
		for i, r := range forward {
			if back := backward[len(backward)-1-i]; back != r {
				result = multierror.Append(result, errors.Errorf("position %d is node %d walking forward but node %d walking backward", i, r, back))
				break
			}
		}
	}

	if live := l.store.Live(); live != l.len+2 {
		result = multierror.Append(result, errors.Errorf("arena holds %d nodes for %d elements", live, l.len))
	}

	return result.ErrorOrNil()
}
