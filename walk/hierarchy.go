package walk

import (
	"iter"

	"github.com/vk/scenewalk/scene"
)

// Parent returns the parent of n, if it has one. When includeWorld is false
// (the usual case), a parent that is the world root counts as no parent.
func (w *Walker) Parent(n scene.Node, includeWorld bool) (scene.Node, bool) {
	parent, ok := w.acc.Parent(n)
	if !ok {
		return nil, false
	}
	if !includeWorld && w.acc.IsWorld(parent) {
		return nil, false
	}
	return parent, true
}

// Children returns the direct children of n in authoring order. An empty tag
// disables type filtering. Leaf-like nodes (shapes) yield nothing.
func (w *Walker) Children(n scene.Node, tag scene.TypeTag) iter.Seq[scene.Node] {
	return func(yield func(scene.Node) bool) {
		for _, child := range w.acc.Children(n) {
			if tag != "" && !w.acc.HasType(child, tag) {
				continue
			}
			if !yield(child) {
				return
			}
		}
	}
}

// Siblings returns the nodes sharing a parent with n, excluding n itself.
// When the shared parent is the world root, nodes implicitly created by the
// host runtime are excluded as well: they are not meaningful siblings of a
// user-authored node.
func (w *Walker) Siblings(n scene.Node, tag scene.TypeTag) iter.Seq[scene.Node] {
	return func(yield func(scene.Node) bool) {
		parent, ok := w.Parent(n, true)
		if !ok {
			// n is the world root: no parent, no siblings.
			return
		}
		parentIsWorld := w.acc.IsWorld(parent)
		self := w.acc.NodeIdentity(n)

		for _, child := range w.acc.Children(parent) {
			if w.acc.NodeIdentity(child) == self {
				continue
			}
			if parentIsWorld && w.acc.IsDefaultNode(child) {
				continue
			}
			if tag != "" && !w.acc.HasType(child, tag) {
				continue
			}
			if !yield(child) {
				return
			}
		}
	}
}

// Hierarchy traverses the tree below (or, with Upstream, above) root. The
// root itself is the first yielded node.
//
// Breadth-first (the default) yields nodes in level order. Depth-first pushes
// children to the back of the work list and pops from the back, so each
// node's last child branch is explored before earlier ones: children appear
// in reverse authoring order per level. Upstream traversal follows the single
// parent chain up to, excluding, the world root; DepthFirst has no effect
// there since each node has at most one parent.
//
// Stoppers are yielded but not expanded. The type filter restricts what is
// yielded, never what is explored.
func (w *Walker) Hierarchy(root scene.Node, opts ...Option) iter.Seq[scene.Node] {
	t := newTraversal(opts)
	return func(yield func(scene.Node) bool) {
		stop := w.nodeSet(t.stoppers)

		var work deque[scene.Node]
		work.PushBack(root)
		for work.Len() > 0 {
			var current scene.Node
			if t.depthFirst {
				current = work.PopBack()
			} else {
				current = work.PopFront()
			}

			if t.matches(w.acc, current) {
				if !yield(current) {
					return
				}
			}

			if stop.Has(w.acc.NodeIdentity(current)) {
				continue
			}

			if t.upstream {
				if parent, ok := w.Parent(current, false); ok {
					work.PushBack(parent)
				}
			} else {
				for _, child := range w.acc.Children(current) {
					work.PushBack(child)
				}
			}
		}
	}
}
