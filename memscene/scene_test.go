package memscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestAddNode(t *testing.T) {
	t.Run("root level parents to world", func(t *testing.T) {
		s := New()
		n, err := s.AddNode(TypeTransform, "a", nil)
		require.NoError(t, err)

		parent, ok := s.Parent(n)
		require.True(t, ok)
		assert.True(t, s.IsWorld(parent))
	})

	t.Run("unknown type", func(t *testing.T) {
		s := New()
		_, err := s.AddNode("flubber", "a", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("duplicate name", func(t *testing.T) {
		s := New()
		_, err := s.AddNode(TypeTransform, "a", nil)
		require.NoError(t, err)
		_, err = s.AddNode(TypeJoint, "a", nil)
		assert.Error(t, err)
	})

	t.Run("shapes cannot have children", func(t *testing.T) {
		s := New()
		shape, err := s.AddNode(TypeMesh, "shape", nil)
		require.NoError(t, err)
		_, err = s.AddNode(TypeTransform, "child", shape)
		assert.Error(t, err)
	})
}

func TestHasType(t *testing.T) {
	s := New()
	joint, err := s.AddNode(TypeJoint, "j", nil)
	require.NoError(t, err)

	assert.True(t, s.HasType(joint, TypeJoint))
	assert.True(t, s.HasType(joint, TypeTransform), "a joint is also a transform")
	assert.True(t, s.HasType(joint, TypeDagNode))
	assert.False(t, s.HasType(joint, TypeShape))
}

func TestPlugResolution(t *testing.T) {
	s := New()
	n, err := s.AddNode(TypeTransform, "n", nil)
	require.NoError(t, err)
	s.AddAttr(n, "tx")
	s.AddCompoundAttr(n, "t", "tx", "ty", "tz")
	arr := s.AddArrayAttr(n, "arr", true, "id", "weight")
	s.Element(arr, 5)

	for _, path := range []string{"n.tx", "n.t", "n.t.ty", "n.arr", "n.arr[5]", "n.arr[5].weight"} {
		p, ok := s.Plug(path)
		require.True(t, ok, path)
		assert.Equal(t, path, s.PlugName(p))
	}

	for _, path := range []string{"n.missing", "m.tx", "n.t.tw", "n.arr[9]", "n"} {
		_, ok := s.Plug(path)
		assert.False(t, ok, path)
	}
}

func TestConnect(t *testing.T) {
	s := New()
	a, err := s.AddNode(TypeTransform, "a", nil)
	require.NoError(t, err)
	b, err := s.AddNode(TypeTransform, "b", nil)
	require.NoError(t, err)
	out := s.AddAttr(a, "out")
	in := s.AddAttr(b, "in")
	in2 := s.AddAttr(b, "in2")

	require.NoError(t, s.Connect(out, in))
	assert.True(t, s.IsSource(out))
	assert.True(t, s.IsDestination(in))

	t.Run("fan-out is allowed", func(t *testing.T) {
		require.NoError(t, s.Connect(out, in2))
		assert.Len(t, s.Destinations(out), 2)
	})

	t.Run("fan-in is rejected", func(t *testing.T) {
		other := s.AddAttr(a, "other")
		err := s.Connect(other, in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFanIn)
	})

	t.Run("disconnect", func(t *testing.T) {
		s.Disconnect(out, in)
		assert.False(t, s.IsDestination(in))
		assert.Len(t, s.Destinations(out), 1)
	})
}

func TestArrayElements(t *testing.T) {
	s := New()
	n, err := s.AddNode(TypeTransform, "n", nil)
	require.NoError(t, err)
	arr := s.AddArrayAttr(n, "arr", true)

	e3 := s.Element(arr, 3)
	e1 := s.Element(arr, 1)

	t.Run("element access is idempotent", func(t *testing.T) {
		assert.Equal(t, e3, s.Element(arr, 3))
		assert.Equal(t, 2, s.ElementCount(arr))
	})

	t.Run("logical order is sorted, physical is materialization order", func(t *testing.T) {
		logical0, err := s.ArrayElement(arr, 0, false)
		require.NoError(t, err)
		assert.Equal(t, e1, logical0)

		physical0, err := s.ArrayElement(arr, 0, true)
		require.NoError(t, err)
		assert.Equal(t, e3, physical0)
	})

	t.Run("out of range is an error", func(t *testing.T) {
		_, err := s.ArrayElement(arr, 2, false)
		assert.Error(t, err)
	})

	t.Run("placeholder is excluded from the count", func(t *testing.T) {
		placeholder := s.Element(arr, -1)
		assert.Equal(t, 2, s.ElementCount(arr))
		assert.Equal(t, -1, s.LogicalIndex(placeholder))
		assert.Contains(t, s.Attributes(n), placeholder)
	})
}

func TestValues(t *testing.T) {
	s := New()
	n, err := s.AddNode(TypeTransform, "n", nil)
	require.NoError(t, err)
	tx := s.AddAttr(n, "tx")

	_, ok := s.Value(tx)
	assert.False(t, ok)

	s.SetValue(tx, cty.NumberIntVal(7))
	v, ok := s.Value(tx)
	require.True(t, ok)
	assert.Equal(t, cty.NumberIntVal(7), v)
}

func TestIdentityStability(t *testing.T) {
	s := New()
	a, err := s.AddNode(TypeTransform, "a", nil)
	require.NoError(t, err)
	b, err := s.AddNode(TypeTransform, "b", nil)
	require.NoError(t, err)

	assert.Equal(t, s.NodeIdentity(a), s.NodeIdentity(a))
	assert.NotEqual(t, s.NodeIdentity(a), s.NodeIdentity(b))

	byName, ok := s.Node("a")
	require.True(t, ok)
	assert.Equal(t, s.NodeIdentity(a), s.NodeIdentity(byName))
}
