package memscene

import (
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/scenewalk/scene"
)

// node is one scene entity. It backs both graphs: the hierarchy through
// parent/children and the dependency graph through its attribute plugs.
type node struct {
	id       uint64
	name     string
	typ      scene.TypeTag
	parent   *node // nil only for the world root
	children []*node
	attrs    []*plug
	// def marks nodes implicitly created by the runtime.
	def bool
}

// attr returns the declared attribute plug with the given name.
func (n *node) attr(name string) *plug {
	for _, p := range n.attrs {
		if p.attrName == name {
			return p
		}
	}
	return nil
}

// plug is one attribute instance. Exactly one of compoundParent/arrayParent
// is set for non-top-level plugs: a plug is either a fixed compound child or
// an array element, never both.
type plug struct {
	id       uint64
	owner    *node
	attrName string // empty for array elements

	array       bool
	compound    bool
	connectable bool

	// Compound structure.
	children       []*plug
	compoundParent *plug

	// Array structure. elements is sparse by logical index; order records
	// physical (materialization) order. The placeholder is the host's
	// reserved next-free-slot element at logical index -1.
	template    []string
	elements    map[int]*plug
	order       []int
	placeholder *plug
	arrayParent *plug
	logical     int

	// Connections. sources holds at most one plug by scene invariant.
	sources []*plug
	dests   []*plug

	value    cty.Value
	hasValue bool
}

// child returns the fixed compound child with the given name.
func (p *plug) child(name string) *plug {
	for _, c := range p.children {
		if c.attrName == name {
			return c
		}
	}
	return nil
}

// path returns the full dotted name of the plug, elements shown with their
// logical index.
func (p *plug) path() string {
	switch {
	case p.compoundParent != nil:
		return p.compoundParent.path() + "." + p.attrName
	case p.arrayParent != nil:
		return p.arrayParent.path() + "[" + strconv.Itoa(p.logical) + "]"
	default:
		return fmt.Sprintf("%s.%s", p.owner.name, p.attrName)
	}
}
