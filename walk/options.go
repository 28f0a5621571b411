package walk

import "github.com/vk/scenewalk/scene"

// Option is a functional option shared by the Hierarchy and Connections
// traversals.
type Option func(*traversal)

// traversal holds the per-call configuration of a graph traversal.
type traversal struct {
	stoppers   []scene.Node
	typeTag    scene.TypeTag
	depthFirst bool
	upstream   bool
}

// WithStoppers marks nodes at which traversal does not expand further. A
// stopper is still yielded; only its descendants (or ancestors, upstream) are
// pruned. Stoppers never reached from the root are simply never encountered.
func WithStoppers(nodes ...scene.Node) Option {
	return func(t *traversal) {
		t.stoppers = append(t.stoppers, nodes...)
	}
}

// WithType restricts the yielded nodes to those satisfying the given type
// capability. Filtering affects which nodes are yielded, not which branches
// are explored.
func WithType(tag scene.TypeTag) Option {
	return func(t *traversal) {
		t.typeTag = tag
	}
}

// DepthFirst switches the traversal from breadth-first (the default) to
// depth-first. For Hierarchy this explores children in reverse authoring
// order at each level; for Connections it disables the predecessor-readiness
// check and visits eagerly.
func DepthFirst() Option {
	return func(t *traversal) {
		t.depthFirst = true
	}
}

// Upstream reverses the traversal direction: parents instead of children for
// Hierarchy, sources instead of destinations for Connections.
func Upstream() Option {
	return func(t *traversal) {
		t.upstream = true
	}
}

func newTraversal(opts []Option) traversal {
	var t traversal
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// matches reports whether n passes the traversal's type filter.
func (t *traversal) matches(acc scene.Accessor, n scene.Node) bool {
	return t.typeTag == "" || acc.HasType(n, t.typeTag)
}

// PlugOption configures a PlugChildren enumeration.
type PlugOption func(*plugOrder)

type plugOrder struct {
	reverse  bool
	physical bool
}

// Reverse yields the same children in reverse order (Z, Y, X or n-1 .. 0)
// without changing which children are included.
func Reverse() PlugOption {
	return func(o *plugOrder) {
		o.reverse = true
	}
}

// PhysicalOrder addresses array elements by storage order instead of the
// default logical (authoring) order. It has no effect on compound plugs.
func PhysicalOrder() PlugOption {
	return func(o *plugOrder) {
		o.physical = true
	}
}
