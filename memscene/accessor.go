package memscene

import (
	"fmt"

	"github.com/vk/scenewalk/scene"
)

// Scene implements scene.Accessor. All methods are pure reads; the mutation
// API lives in scene.go and must not run while a traversal is in progress.

func (s *Scene) Parent(h scene.Node) (scene.Node, bool) {
	n := s.asNode(h)
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (s *Scene) Children(h scene.Node) []scene.Node {
	n := s.asNode(h)
	children := make([]scene.Node, 0, len(n.children))
	for _, c := range n.children {
		children = append(children, c)
	}
	return children
}

func (s *Scene) HasType(h scene.Node, t scene.TypeTag) bool {
	typ := s.asNode(h).typ
	for typ != "" {
		if typ == t {
			return true
		}
		typ = s.types[typ].parent
	}
	return false
}

func (s *Scene) IsWorld(h scene.Node) bool {
	return s.asNode(h) == s.world
}

func (s *Scene) IsDefaultNode(h scene.Node) bool {
	return s.asNode(h).def
}

func (s *Scene) Attributes(h scene.Node) []scene.Plug {
	n := s.asNode(h)
	plugs := make([]scene.Plug, 0, len(n.attrs))
	for _, p := range n.attrs {
		plugs = append(plugs, p)
		// Fixed compound children are attributes of the node in their own
		// right and show up in the listing. Array elements do not; only a
		// materialized next-free-slot placeholder leaks through, right
		// after its array.
		if p.compound && !p.array {
			for _, c := range p.children {
				plugs = append(plugs, c)
			}
		}
		if p.placeholder != nil {
			plugs = append(plugs, p.placeholder)
		}
	}
	return plugs
}

func (s *Scene) PlugNode(h scene.Plug) scene.Node {
	return s.asPlug(h).owner
}

func (s *Scene) IsArray(h scene.Plug) bool {
	return s.asPlug(h).array
}

func (s *Scene) IsCompound(h scene.Plug) bool {
	return s.asPlug(h).compound
}

func (s *Scene) IsConnectable(h scene.Plug) bool {
	return s.asPlug(h).connectable
}

func (s *Scene) ElementCount(h scene.Plug) int {
	return len(s.asPlug(h).order)
}

func (s *Scene) ChildCount(h scene.Plug) int {
	p := s.asPlug(h)
	if p.array {
		return 0
	}
	return len(p.children)
}

func (s *Scene) ArrayElement(h scene.Plug, index int, physical bool) (scene.Plug, error) {
	p := s.asPlug(h)
	if !p.array || index < 0 || index >= len(p.order) {
		return nil, fmt.Errorf("no element at index %d of %s", index, p.path())
	}
	logical := p.order[index]
	if !physical {
		logical = p.logicalOrder()[index]
	}
	return p.elements[logical], nil
}

func (s *Scene) CompoundChild(h scene.Plug, index int) (scene.Plug, error) {
	p := s.asPlug(h)
	if index < 0 || index >= len(p.children) {
		return nil, fmt.Errorf("no child at index %d of %s", index, p.path())
	}
	return p.children[index], nil
}

func (s *Scene) IsElement(h scene.Plug) bool {
	return s.asPlug(h).arrayParent != nil
}

func (s *Scene) IsChild(h scene.Plug) bool {
	return s.asPlug(h).compoundParent != nil
}

func (s *Scene) LogicalIndex(h scene.Plug) int {
	return s.asPlug(h).logical
}

func (s *Scene) ArrayParent(h scene.Plug) (scene.Plug, bool) {
	p := s.asPlug(h)
	if p.arrayParent == nil {
		return nil, false
	}
	return p.arrayParent, true
}

func (s *Scene) CompoundParent(h scene.Plug) (scene.Plug, bool) {
	p := s.asPlug(h)
	if p.compoundParent == nil {
		return nil, false
	}
	return p.compoundParent, true
}

func (s *Scene) IsSource(h scene.Plug) bool {
	return len(s.asPlug(h).dests) > 0
}

func (s *Scene) IsDestination(h scene.Plug) bool {
	return len(s.asPlug(h).sources) > 0
}

func (s *Scene) Sources(h scene.Plug) []scene.Plug {
	return asPlugs(s.asPlug(h).sources)
}

func (s *Scene) Destinations(h scene.Plug) []scene.Plug {
	return asPlugs(s.asPlug(h).dests)
}

func (s *Scene) NodeIdentity(h scene.Node) scene.Identity {
	return scene.Identity(s.asNode(h).id)
}

func (s *Scene) PlugIdentity(h scene.Plug) scene.Identity {
	return scene.Identity(s.asPlug(h).id)
}

func asPlugs(plugs []*plug) []scene.Plug {
	out := make([]scene.Plug, 0, len(plugs))
	for _, p := range plugs {
		out = append(out, p)
	}
	return out
}
