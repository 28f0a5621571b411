package memscene

import "github.com/vk/scenewalk/scene"

// Built-in entity types. Type membership follows the parent chain, so a
// "joint" also satisfies "transform" and "dagNode".
const (
	TypeDagNode    scene.TypeTag = "dagNode"
	TypeWorld      scene.TypeTag = "world"
	TypeTransform  scene.TypeTag = "transform"
	TypeJoint      scene.TypeTag = "joint"
	TypeShape      scene.TypeTag = "shape"
	TypeNurbsCurve scene.TypeTag = "nurbsCurve"
	TypeMesh       scene.TypeTag = "mesh"
)

// typeSpec describes one registered entity type.
type typeSpec struct {
	// parent is the type this one specializes; empty for the root type.
	parent scene.TypeTag
	// shape types are hierarchy leaves: they can never have children.
	shape bool
}

func builtinTypes() map[scene.TypeTag]typeSpec {
	return map[scene.TypeTag]typeSpec{
		TypeDagNode:    {},
		TypeWorld:      {parent: TypeDagNode},
		TypeTransform:  {parent: TypeDagNode},
		TypeJoint:      {parent: TypeTransform},
		TypeShape:      {parent: TypeDagNode, shape: true},
		TypeNurbsCurve: {parent: TypeShape, shape: true},
		TypeMesh:       {parent: TypeShape, shape: true},
	}
}
