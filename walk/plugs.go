package walk

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vk/scenewalk/scene"
)

// ErrChildPlug reports an unexpected accessor failure while retrieving a
// child plug by index. It is an internal-state error, distinct from the
// normal empty case which is signalled by the element count.
var ErrChildPlug = errors.New("internal error retrieving child plug")

// Plugs enumerates every visitable attribute plug of n: each attribute in
// declaration order, and for array attributes their elements right after the
// array plug itself. Array-of-compound attributes are expanded through their
// array indexes, never as compounds directly.
//
// The host's reserved next-free-slot placeholder (negative logical index) is
// never surfaced, and non-connectable arrays are not expanded. A non-zero
// status restricts the output to plugs with that connectivity.
//
// The sequence fails fast with an ErrChildPlug-wrapped error if element
// retrieval breaks mid-way.
func (w *Walker) Plugs(n scene.Node, status ConnectionStatus) iter.Seq2[scene.Plug, error] {
	return func(yield func(scene.Plug, error) bool) {
		for _, plug := range w.acc.Attributes(n) {
			if w.acc.IsElement(plug) && w.acc.LogicalIndex(plug) < 0 {
				w.log.Debug("ignoring placeholder element plug", "plug", w.acc.PlugIdentity(plug))
				continue
			}

			if w.hasStatus(plug, status) {
				if !yield(plug, nil) {
					return
				}
			}

			// Include children if array. Compound children are covered by
			// array expansion, array-of-compound elements are the compounds.
			if !w.acc.IsArray(plug) {
				continue
			}
			for child, err := range w.PlugChildren(plug) {
				if err != nil {
					yield(nil, err)
					return
				}
				if w.hasStatus(child, status) {
					if !yield(child, nil) {
						return
					}
				}
			}
		}
	}
}

// PlugParent returns the compound parent of a compound child, the array plug
// of an array element, and false for plugs that are neither. The two cases
// are mutually exclusive by construction.
func (w *Walker) PlugParent(p scene.Plug) (scene.Plug, bool) {
	if w.acc.IsChild(p) {
		return w.acc.CompoundParent(p)
	}
	if w.acc.IsElement(p) {
		return w.acc.ArrayParent(p)
	}
	return nil, false
}

// PlugChildren enumerates the direct children of p: array elements by logical
// index (or physical with PhysicalOrder), or the fixed children of a
// compound. Scalars yield nothing.
//
// A plug that is both array and compound is treated as an array; its elements
// are the real compounds. Non-connectable arrays have no runtime-visitable
// elements and yield an empty sequence regardless of their element count.
//
// Reverse yields the same children back to front. An accessor failure
// retrieving a child surfaces as an ErrChildPlug-wrapped error and ends the
// sequence.
func (w *Walker) PlugChildren(p scene.Plug, opts ...PlugOption) iter.Seq2[scene.Plug, error] {
	var order plugOrder
	for _, opt := range opts {
		opt(&order)
	}

	return func(yield func(scene.Plug, error) bool) {
		var count int
		var child func(int) (scene.Plug, error)

		switch {
		case w.acc.IsArray(p):
			if !w.acc.IsConnectable(p) {
				w.log.Debug("ignoring non-connectable array plug", "plug", w.acc.PlugIdentity(p))
				return
			}
			count = w.acc.ElementCount(p)
			child = func(i int) (scene.Plug, error) {
				return w.acc.ArrayElement(p, i, order.physical)
			}
		case w.acc.IsCompound(p):
			count = w.acc.ChildCount(p)
			child = func(i int) (scene.Plug, error) {
				return w.acc.CompoundChild(p, i)
			}
		default:
			return
		}

		for i := 0; i < count; i++ {
			index := i
			if order.reverse {
				index = count - 1 - i
			}
			c, err := child(index)
			if err != nil {
				yield(nil, fmt.Errorf("%w: index %d: %v", ErrChildPlug, index, err))
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// PlugHasSource reports whether p has a source connection. With nested true
// the check extends depth-first over p's whole child tree, short-circuiting
// on the first match.
func (w *Walker) PlugHasSource(p scene.Plug, nested bool) (bool, error) {
	return w.anyPlug(p, nested, w.acc.IsDestination)
}

// PlugHasDestinations reports whether p has any destination connection. With
// nested true the check extends depth-first over p's whole child tree.
func (w *Walker) PlugHasDestinations(p scene.Plug, nested bool) (bool, error) {
	return w.anyPlug(p, nested, w.acc.IsSource)
}

// PlugHasConnections reports whether p has any connection at all, in either
// direction, optionally nested.
func (w *Walker) PlugHasConnections(p scene.Plug, nested bool) (bool, error) {
	if ok, err := w.PlugHasSource(p, nested); ok || err != nil {
		return ok, err
	}
	return w.PlugHasDestinations(p, nested)
}

// anyPlug walks p (and, if nested, its descendants) depth-first until pred
// matches one plug.
func (w *Walker) anyPlug(p scene.Plug, nested bool, pred func(scene.Plug) bool) (bool, error) {
	stack := []scene.Plug{p}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pred(current) {
			return true, nil
		}
		if !nested {
			continue
		}
		for child, err := range w.PlugChildren(current) {
			if err != nil {
				return false, err
			}
			stack = append(stack, child)
		}
	}
	return false, nil
}
