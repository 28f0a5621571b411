package walk

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/scenewalk/memscene"
	"github.com/vk/scenewalk/scene"
)

// names drains a node sequence into readable node names.
func names(s *memscene.Scene, seq iter.Seq[scene.Node]) []string {
	var out []string
	for n := range seq {
		out = append(out, s.NodeName(n))
	}
	return out
}

// plugNames drains a plug sequence, failing the test on any error.
func plugNames(t *testing.T, s *memscene.Scene, seq iter.Seq2[scene.Plug, error]) []string {
	t.Helper()
	var out []string
	for p, err := range seq {
		require.NoError(t, err)
		out = append(out, s.PlugName(p))
	}
	return out
}

// mustNode creates a node or fails the test.
func mustNode(t *testing.T, s *memscene.Scene, typ scene.TypeTag, name string, parent scene.Node) scene.Node {
	t.Helper()
	n, err := s.AddNode(typ, name, parent)
	require.NoError(t, err)
	return n
}

// mustConnect wires src into dst or fails the test.
func mustConnect(t *testing.T, s *memscene.Scene, src, dst scene.Plug) {
	t.Helper()
	require.NoError(t, s.Connect(src, dst))
}
