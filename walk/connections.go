package walk

import (
	"iter"

	"github.com/vk/scenewalk/scene"
)

// Connections traverses the dependency graph reachable from root, following
// destination edges (or source edges with Upstream). The root is the first
// yielded node, every reachable node is yielded at most once, and traversal
// terminates even when the graph contains cycles.
//
// In breadth-first mode (the default) a node is not visited while it still
// has an unvisited neighbor in the opposite direction (other than itself and
// the root): the occurrence is dropped and the node re-enters the work list
// when that predecessor is processed and re-emits it. This approximates a
// topological order over the reachable subgraph, so converging paths yield
// deterministic, dependency-respecting output. A node whose only predecessor
// is unreachable from root is never yielded at all.
//
// Depth-first mode visits eagerly; cycles are broken by the visited set alone.
func (w *Walker) Connections(root scene.Node, opts ...Option) iter.Seq[scene.Node] {
	t := newTraversal(opts)
	return func(yield func(scene.Node) bool) {
		stop := w.nodeSet(t.stoppers)
		visited := make(identitySet)
		rootID := w.acc.NodeIdentity(root)

		neighbors := func(n scene.Node) iter.Seq[scene.Node] {
			if t.upstream {
				return w.Connected(n, true, false)
			}
			return w.Connected(n, false, true)
		}

		// waiting reports whether n still has an unvisited neighbor in the
		// opposite traversal direction, excluding n itself. The root never
		// waits: it is where the walk starts.
		waiting := func(n scene.Node, id scene.Identity) bool {
			if id == rootID {
				return false
			}
			var opposite iter.Seq[scene.Node]
			if t.upstream {
				opposite = w.Connected(n, false, true)
			} else {
				opposite = w.Connected(n, true, false)
			}
			for prev := range opposite {
				prevID := w.acc.NodeIdentity(prev)
				if prevID == id {
					continue
				}
				if !visited.Has(prevID) {
					return true
				}
			}
			return false
		}

		var work deque[scene.Node]
		work.PushBack(root)
		for work.Len() > 0 {
			var current scene.Node
			if t.depthFirst {
				current = work.PopBack()
			} else {
				current = work.PopFront()
			}
			id := w.acc.NodeIdentity(current)

			if visited.Has(id) {
				// Cycle closure, already processed.
				continue
			}

			// Breadth-first only: drop occurrences that arrive before all
			// known predecessors have been yielded.
			if !t.depthFirst && waiting(current, id) {
				continue
			}

			if t.matches(w.acc, current) {
				if !yield(current) {
					return
				}
			}
			visited.Add(id)

			if stop.Has(id) {
				continue
			}
			for n := range neighbors(current) {
				work.PushBack(n)
			}
		}
	}
}

// Connected yields, without recursion, the distinct nodes directly connected
// to n's plugs: source nodes first, then destination nodes. Each half is
// deduplicated independently by node identity, so a node connected both ways
// appears once per half.
func (w *Walker) Connected(n scene.Node, sources, destinations bool) iter.Seq[scene.Node] {
	return func(yield func(scene.Node) bool) {
		if sources {
			seen := make(identitySet)
			for plug, err := range w.Plugs(n, ConnectedSources) {
				if err != nil {
					w.log.Error("skipping plug with broken children", "node", w.acc.NodeIdentity(n), "error", err)
					continue
				}
				for _, src := range w.acc.Sources(plug) {
					node := w.acc.PlugNode(src)
					id := w.acc.NodeIdentity(node)
					if seen.Has(id) {
						continue
					}
					if !yield(node) {
						return
					}
					seen.Add(id)
				}
			}
		}

		if destinations {
			seen := make(identitySet)
			for plug, err := range w.Plugs(n, ConnectedDestinations) {
				if err != nil {
					w.log.Error("skipping plug with broken children", "node", w.acc.NodeIdentity(n), "error", err)
					continue
				}
				for _, dst := range w.acc.Destinations(plug) {
					node := w.acc.PlugNode(dst)
					id := w.acc.NodeIdentity(node)
					if seen.Has(id) {
						continue
					}
					if !yield(node) {
						return
					}
					seen.Add(id)
				}
			}
		}
	}
}
