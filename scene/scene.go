package scene

// Node is an opaque handle to one scene entity. A node participates in the
// hierarchy (at most one parent, any number of children) and in the dependency
// graph (through the plugs it owns).
//
// Handle values are owned by the host. Do not compare them with ==; ask the
// Accessor for their identity instead.
type Node interface{}

// Plug is an opaque handle to one attribute instance on a node. A plug is
// scalar (no children), compound (fixed ordered children) or array (sparse
// indexed elements); an array plug may additionally be compound, in which
// case its elements are the compounds.
type Plug interface{}

// TypeTag names a host entity type, e.g. "transform" or "joint". Type
// membership is a capability predicate answered by Accessor.HasType, not a
// Go type assertion: a host may consider a "joint" to also be a "transform".
type TypeTag string

// Identity is the stable hash of a handle for the duration of a traversal.
// Two handles with the same identity refer to the same underlying entity.
type Identity uint64

// Accessor is the narrow read-only contract a host must satisfy for the
// traversal core to walk its scene.
//
// All methods are queries; none may mutate the scene. Absence is reported
// through zero counts, empty slices, or a false second return value, never
// through an error. The only methods allowed to fail are ArrayElement and
// CompoundChild, and only for genuinely unexpected host states (the normal
// out-of-range case is excluded up front by ElementCount / ChildCount).
//
// Thread-safety: implementations are called from a single goroutine per
// traversal and may assume no concurrent mutation (single-writer model
// delegated to the host).
type Accessor interface {
	// Parent returns the hierarchy parent of n. The world root is a valid
	// parent here; callers that want world filtered out do it themselves.
	// Returns false if n has no parent at all.
	Parent(n Node) (Node, bool)

	// Children returns the direct hierarchy children of n in authoring
	// order. Leaf-like types (shapes) return an empty slice.
	Children(n Node) []Node

	// HasType reports whether n satisfies the type capability t, including
	// any host subtyping (a joint is also a transform).
	HasType(n Node, t TypeTag) bool

	// IsWorld reports whether n is the distinguished world root.
	IsWorld(n Node) bool

	// IsDefaultNode reports whether n was implicitly created by the host
	// runtime rather than authored by a user.
	IsDefaultNode(n Node) bool

	// Attributes returns every attribute plug of n, in declaration order.
	// The listing may include array placeholder elements the host has
	// materialized; they are identified by a negative LogicalIndex.
	Attributes(n Node) []Plug

	// PlugNode returns the node that owns p.
	PlugNode(p Plug) Node

	// IsArray reports whether p is an array plug. An array-of-compound plug
	// reports true here and must be treated as an array.
	IsArray(p Plug) bool

	// IsCompound reports whether p has a fixed set of child plugs.
	IsCompound(p Plug) bool

	// IsConnectable reports whether the attribute behind p supports
	// connections. Non-connectable arrays have no visitable elements.
	IsConnectable(p Plug) bool

	// ElementCount returns the number of materialized elements of an array
	// plug, excluding any placeholder. Zero for non-arrays.
	ElementCount(p Plug) int

	// ChildCount returns the number of fixed children of a compound plug.
	// Zero for non-compounds.
	ChildCount(p Plug) int

	// ArrayElement returns the array element at position index, by logical
	// (authoring) order when physical is false, by storage order when true.
	// index is in [0, ElementCount(p)); an error signals an unexpected
	// internal host failure, not an out-of-range request.
	ArrayElement(p Plug, index int, physical bool) (Plug, error)

	// CompoundChild returns the fixed child at index of a compound plug.
	// index is in [0, ChildCount(p)); errors are internal failures only.
	CompoundChild(p Plug, index int) (Plug, error)

	// IsElement reports whether p is an element of an array plug.
	IsElement(p Plug) bool

	// IsChild reports whether p is a fixed child of a compound plug.
	IsChild(p Plug) bool

	// LogicalIndex returns the logical index of an array element, or a
	// negative value for the host's reserved next-free-slot placeholder.
	// The result is meaningless when IsElement(p) is false.
	LogicalIndex(p Plug) int

	// ArrayParent returns the array plug p is an element of.
	// Returns false when IsElement(p) is false.
	ArrayParent(p Plug) (Plug, bool)

	// CompoundParent returns the compound plug p is a fixed child of.
	// Returns false when IsChild(p) is false.
	CompoundParent(p Plug) (Plug, bool)

	// IsSource reports whether p feeds at least one destination plug.
	IsSource(p Plug) bool

	// IsDestination reports whether p is fed by a source plug.
	IsDestination(p Plug) bool

	// Sources returns the plugs feeding p. By host invariant there is at
	// most one, but the contract leaves room for hosts that disagree.
	Sources(p Plug) []Plug

	// Destinations returns the plugs p feeds, in connection order.
	Destinations(p Plug) []Plug

	// NodeIdentity returns the stable identity of a node handle.
	NodeIdentity(n Node) Identity

	// PlugIdentity returns the stable identity of a plug handle.
	PlugIdentity(p Plug) Identity
}
