package memscene

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/scenewalk/scene"
)

// ErrUnknownType is returned when a caller requests an entity type that is
// not registered with the scene.
var ErrUnknownType = errors.New("unknown entity type")

// ErrFanIn is returned when a connection would give a destination plug a
// second source.
var ErrFanIn = errors.New("destination already has a source")

// Scene is an in-memory scene database implementing scene.Accessor. The zero
// value is not usable; call New.
type Scene struct {
	nextID uint64
	world  *node
	nodes  map[string]*node
	types  map[scene.TypeTag]typeSpec
}

// New creates a scene containing only the world root.
func New() *Scene {
	s := &Scene{
		nodes: make(map[string]*node),
		types: builtinTypes(),
	}
	s.world = &node{
		id:   s.id(),
		name: "world",
		typ:  TypeWorld,
	}
	return s
}

func (s *Scene) id() uint64 {
	s.nextID++
	return s.nextID
}

// World returns the world root node.
func (s *Scene) World() scene.Node {
	return s.world
}

// AddNode creates a node of the given registered type under parent. A nil
// parent means root level (parented to world). The name must be unique in
// the scene, and the parent cannot be a shape.
func (s *Scene) AddNode(typ scene.TypeTag, name string, parent scene.Node) (scene.Node, error) {
	if _, ok := s.types[typ]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	if _, exists := s.nodes[name]; exists || name == s.world.name {
		return nil, fmt.Errorf("node %q already exists", name)
	}

	parentNode := s.world
	if parent != nil {
		parentNode = s.asNode(parent)
		if s.types[parentNode.typ].shape {
			return nil, fmt.Errorf("node %q of type %q cannot have children", parentNode.name, parentNode.typ)
		}
	}

	n := &node{
		id:     s.id(),
		name:   name,
		typ:    typ,
		parent: parentNode,
	}
	parentNode.children = append(parentNode.children, n)
	s.nodes[name] = n
	return n, nil
}

// MarkDefault flags n as implicitly created by the host runtime. Default
// nodes at root level are excluded from sibling queries.
func (s *Scene) MarkDefault(n scene.Node) {
	s.asNode(n).def = true
}

// Node returns the node with the given name.
func (s *Scene) Node(name string) (scene.Node, bool) {
	if name == s.world.name {
		return s.world, true
	}
	n, ok := s.nodes[name]
	if !ok {
		return nil, false
	}
	return n, true
}

// NodeName returns the authored name of a node handle.
func (s *Scene) NodeName(n scene.Node) string {
	return s.asNode(n).name
}

// PlugName returns the full dotted name of a plug handle, e.g. "a.t.tx" or
// "a.weights[3]".
func (s *Scene) PlugName(p scene.Plug) string {
	return s.asPlug(p).path()
}

// AddAttr declares a scalar attribute on n and returns its plug.
func (s *Scene) AddAttr(n scene.Node, name string) scene.Plug {
	return s.addAttr(n, name, &plug{connectable: true})
}

// AddCompoundAttr declares a compound attribute with the given fixed child
// names, in order.
func (s *Scene) AddCompoundAttr(n scene.Node, name string, children ...string) scene.Plug {
	parent := &plug{compound: true, connectable: true}
	s.addAttr(n, name, parent)
	for _, childName := range children {
		child := &plug{
			id:             s.id(),
			owner:          parent.owner,
			attrName:       childName,
			connectable:    true,
			compoundParent: parent,
		}
		parent.children = append(parent.children, child)
	}
	return parent
}

// AddArrayAttr declares an array attribute. Non-connectable arrays exist but
// expose no runtime-visitable elements. Compound child names, if given, make
// it an array-of-compound: each element is a compound with those children.
func (s *Scene) AddArrayAttr(n scene.Node, name string, connectable bool, compound ...string) scene.Plug {
	return s.addAttr(n, name, &plug{
		array:       true,
		compound:    len(compound) > 0,
		connectable: connectable,
		template:    compound,
		elements:    make(map[int]*plug),
	})
}

func (s *Scene) addAttr(n scene.Node, name string, p *plug) scene.Plug {
	owner := s.asNode(n)
	p.id = s.id()
	p.owner = owner
	p.attrName = name
	owner.attrs = append(owner.attrs, p)
	return p
}

// Element returns the array element with the given logical index, creating
// it on first access the way a host materializes sparse elements. A negative
// index materializes the reserved next-free-slot placeholder, which is
// surfaced by the attribute listing but holds no data. Element panics when
// arr is not an array plug; that is a programming error, not a host state.
func (s *Scene) Element(arr scene.Plug, logical int) scene.Plug {
	a := s.asPlug(arr)
	if !a.array {
		panic(fmt.Sprintf("memscene: %s is not an array plug", a.path()))
	}

	if logical < 0 {
		if a.placeholder == nil {
			a.placeholder = s.newElement(a, -1)
		}
		return a.placeholder
	}

	if e, ok := a.elements[logical]; ok {
		return e
	}
	e := s.newElement(a, logical)
	a.elements[logical] = e
	a.order = append(a.order, logical)
	return e
}

func (s *Scene) newElement(a *plug, logical int) *plug {
	e := &plug{
		id:          s.id(),
		owner:       a.owner,
		connectable: a.connectable,
		arrayParent: a,
		logical:     logical,
		compound:    len(a.template) > 0,
	}
	for _, childName := range a.template {
		child := &plug{
			id:             s.id(),
			owner:          a.owner,
			attrName:       childName,
			connectable:    a.connectable,
			compoundParent: e,
		}
		e.children = append(e.children, child)
	}
	return e
}

// Plug resolves a full plug path like "a.tx", "a.t.tz" or "a.weights[3]".
// Array elements must already be materialized.
func (s *Scene) Plug(path string) (scene.Plug, bool) {
	nodeName, rest, ok := strings.Cut(path, ".")
	if !ok {
		return nil, false
	}
	n, ok := s.nodes[nodeName]
	if !ok {
		return nil, false
	}

	var current *plug
	for _, part := range strings.Split(rest, ".") {
		name := part
		index, hasIndex := -1, false
		if open := strings.IndexByte(part, '['); open >= 0 && strings.HasSuffix(part, "]") {
			parsed, err := strconv.Atoi(part[open+1 : len(part)-1])
			if err != nil {
				return nil, false
			}
			name, index, hasIndex = part[:open], parsed, true
		}

		if current == nil {
			current = n.attr(name)
		} else {
			current = current.child(name)
		}
		if current == nil {
			return nil, false
		}
		if hasIndex {
			if !current.array {
				return nil, false
			}
			e, ok := current.elements[index]
			if !ok {
				return nil, false
			}
			current = e
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// Connect creates a directed connection from src to dst. Fan-out from one
// source is allowed; a destination accepts at most one source.
func (s *Scene) Connect(src, dst scene.Plug) error {
	from, to := s.asPlug(src), s.asPlug(dst)
	if len(to.sources) > 0 {
		return fmt.Errorf("%w: %s", ErrFanIn, to.path())
	}
	from.dests = append(from.dests, to)
	to.sources = append(to.sources, from)
	return nil
}

// Disconnect removes the connection from src to dst, if present.
func (s *Scene) Disconnect(src, dst scene.Plug) {
	from, to := s.asPlug(src), s.asPlug(dst)
	from.dests = removePlug(from.dests, to)
	to.sources = removePlug(to.sources, from)
}

// SetValue stores a value on a plug.
func (s *Scene) SetValue(p scene.Plug, v cty.Value) {
	plug := s.asPlug(p)
	plug.value = v
	plug.hasValue = true
}

// Value returns the value stored on a plug, if any.
func (s *Scene) Value(p scene.Plug) (cty.Value, bool) {
	plug := s.asPlug(p)
	return plug.value, plug.hasValue
}

func removePlug(plugs []*plug, target *plug) []*plug {
	for i, p := range plugs {
		if p == target {
			return append(plugs[:i], plugs[i+1:]...)
		}
	}
	return plugs
}

// logicalOrder returns the materialized logical indexes of an array plug in
// ascending (authoring) order, placeholder excluded.
func (p *plug) logicalOrder() []int {
	indexes := make([]int, len(p.order))
	copy(indexes, p.order)
	sort.Ints(indexes)
	return indexes
}

func (s *Scene) asNode(h scene.Node) *node {
	n, ok := h.(*node)
	if !ok {
		panic(fmt.Sprintf("memscene: foreign node handle %T", h))
	}
	return n
}

func (s *Scene) asPlug(h scene.Plug) *plug {
	p, ok := h.(*plug)
	if !ok {
		panic(fmt.Sprintf("memscene: foreign plug handle %T", h))
	}
	return p
}
