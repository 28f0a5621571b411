package walk

import (
	"iter"

	"github.com/vk/scenewalk/scene"
)

// TopNodes yields the members of nodes whose ancestry does not intersect
// nodes itself, preserving input order.
//
// With sparse false, only the immediate parent of each member is checked
// against the collection. With sparse true, the whole upstream chain is
// checked, so a member is kept only when no ancestor at any depth belongs to
// the collection; this handles selections with arbitrarily deep gaps.
//
// Membership is always evaluated against the original input collection, not
// against the nodes yielded so far.
func (w *Walker) TopNodes(nodes []scene.Node, sparse bool) iter.Seq[scene.Node] {
	return func(yield func(scene.Node) bool) {
		members := w.nodeSet(nodes)

		for _, n := range nodes {
			top := true
			if sparse {
				for parent, ok := w.Parent(n, false); ok; parent, ok = w.Parent(parent, false) {
					if members.Has(w.acc.NodeIdentity(parent)) {
						top = false
						break
					}
				}
			} else if parent, ok := w.Parent(n, false); ok {
				top = !members.Has(w.acc.NodeIdentity(parent))
			}

			if top && !yield(n) {
				return
			}
		}
	}
}
