package walk

import "github.com/vk/scenewalk/scene"

// identitySet tracks processed handles by their accessor-provided stable
// identity. Handle values themselves are never compared; two wrappers over
// the same entity share one identity.
type identitySet map[scene.Identity]struct{}

func (s identitySet) Add(id scene.Identity) {
	s[id] = struct{}{}
}

func (s identitySet) Has(id scene.Identity) bool {
	_, ok := s[id]
	return ok
}

// nodeSet builds an identity set over the given nodes.
func (w *Walker) nodeSet(nodes []scene.Node) identitySet {
	set := make(identitySet, len(nodes))
	for _, n := range nodes {
		set.Add(w.acc.NodeIdentity(n))
	}
	return set
}
