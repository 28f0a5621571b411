package walk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/scenewalk/memscene"
)

func TestParent(t *testing.T) {
	s := memscene.New()
	w := New(s)

	parent := mustNode(t, s, memscene.TypeTransform, "parent", nil)
	child := mustNode(t, s, memscene.TypeTransform, "child", parent)

	t.Run("child to parent", func(t *testing.T) {
		got, ok := w.Parent(child, false)
		require.True(t, ok)
		assert.Equal(t, "parent", s.NodeName(got))
	})

	t.Run("world is filtered by default", func(t *testing.T) {
		_, ok := w.Parent(parent, false)
		assert.False(t, ok)
	})

	t.Run("world is returned on request", func(t *testing.T) {
		got, ok := w.Parent(parent, true)
		require.True(t, ok)
		assert.Equal(t, s.World(), got)
	})

	t.Run("world itself has no parent", func(t *testing.T) {
		_, ok := w.Parent(s.World(), true)
		assert.False(t, ok)
	})
}

func TestChildren(t *testing.T) {
	s := memscene.New()
	w := New(s)

	parent := mustNode(t, s, memscene.TypeTransform, "parent", nil)
	mustNode(t, s, memscene.TypeNurbsCurve, "shape", parent)
	mustNode(t, s, memscene.TypeTransform, "group", parent)

	t.Run("authoring order", func(t *testing.T) {
		assert.Equal(t, []string{"shape", "group"}, names(s, w.Children(parent, "")))
	})

	t.Run("type filtered", func(t *testing.T) {
		assert.Equal(t, []string{"shape"}, names(s, w.Children(parent, memscene.TypeNurbsCurve)))
	})

	t.Run("round-trips with parent", func(t *testing.T) {
		for child := range w.Children(parent, "") {
			got, ok := w.Parent(child, false)
			require.True(t, ok)
			assert.Equal(t, "parent", s.NodeName(got))
		}
	})

	t.Run("shape is a leaf", func(t *testing.T) {
		shape, ok := s.Node("shape")
		require.True(t, ok)
		assert.Empty(t, names(s, w.Children(shape, "")))
	})
}

func TestSiblings(t *testing.T) {
	s := memscene.New()
	w := New(s)

	parent := mustNode(t, s, memscene.TypeTransform, "parent", nil)
	node := mustNode(t, s, memscene.TypeTransform, "node", parent)
	mustNode(t, s, memscene.TypeTransform, "group", parent)
	mustNode(t, s, memscene.TypeJoint, "joint", parent)

	t.Run("all siblings", func(t *testing.T) {
		assert.Equal(t, []string{"group", "joint"}, names(s, w.Siblings(node, "")))
	})

	t.Run("type filtered", func(t *testing.T) {
		assert.Equal(t, []string{"joint"}, names(s, w.Siblings(node, memscene.TypeJoint)))
	})

	t.Run("default nodes hidden at root level", func(t *testing.T) {
		camera := mustNode(t, s, memscene.TypeTransform, "persp", nil)
		s.MarkDefault(camera)
		other := mustNode(t, s, memscene.TypeTransform, "other", nil)

		got := names(s, w.Siblings(parent, ""))
		assert.Contains(t, got, "other")
		assert.NotContains(t, got, "persp")
		_ = other
	})

	t.Run("world has no siblings", func(t *testing.T) {
		assert.Empty(t, names(s, w.Siblings(s.World(), "")))
	})
}

func TestHierarchy(t *testing.T) {
	// root
	//  |- a
	//  |   |- shape
	//  |- b
	s := memscene.New()
	w := New(s)
	root := mustNode(t, s, memscene.TypeTransform, "root", nil)
	a := mustNode(t, s, memscene.TypeTransform, "a", root)
	mustNode(t, s, memscene.TypeNurbsCurve, "shape", a)
	mustNode(t, s, memscene.TypeJoint, "b", root)

	t.Run("breadth-first is level order", func(t *testing.T) {
		got := names(s, w.Hierarchy(root))
		if diff := cmp.Diff([]string{"root", "a", "b", "shape"}, got); diff != "" {
			t.Errorf("hierarchy order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("depth-first explores last child branch first", func(t *testing.T) {
		got := names(s, w.Hierarchy(root, DepthFirst()))
		if diff := cmp.Diff([]string{"root", "b", "a", "shape"}, got); diff != "" {
			t.Errorf("hierarchy order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("type filter restricts yield not exploration", func(t *testing.T) {
		assert.Equal(t, []string{"b"}, names(s, w.Hierarchy(root, WithType(memscene.TypeJoint))))
	})

	t.Run("stoppers are yielded but not expanded", func(t *testing.T) {
		assert.Equal(t, []string{"root", "a", "b"}, names(s, w.Hierarchy(root, WithStoppers(a))))
	})

	t.Run("upstream walks ancestors excluding world", func(t *testing.T) {
		shape, ok := s.Node("shape")
		require.True(t, ok)
		assert.Equal(t, []string{"shape", "a", "root"}, names(s, w.Hierarchy(shape, Upstream())))

		// depth_first has nothing to reorder on a single parent chain.
		assert.Equal(t, []string{"shape", "a", "root"}, names(s, w.Hierarchy(shape, Upstream(), DepthFirst())))
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := w.Hierarchy(root)
		first := names(s, seq)
		second := names(s, seq)
		assert.Equal(t, first, second)
	})

	t.Run("early break is safe", func(t *testing.T) {
		var got []string
		for n := range w.Hierarchy(root) {
			got = append(got, s.NodeName(n))
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"root", "a"}, got)
	})
}
