package scenehcl

import "github.com/zclconf/go-cty/cty"

// sceneFile represents the top-level structure of a scene file for decoding.
type sceneFile struct {
	Nodes       []*nodeBlock       `hcl:"node,block"`
	Connections []*connectionBlock `hcl:"connection,block"`
}

// nodeBlock represents a `node` block: one scene entity with its hierarchy
// placement and declared attributes.
type nodeBlock struct {
	Type       string            `hcl:"node_type,label"`
	Name       string            `hcl:"name,label"`
	Parent     string            `hcl:"parent,optional"`
	Default    bool              `hcl:"default,optional"`
	Attributes []*attributeBlock `hcl:"attribute,block"`
}

// attributeBlock represents an `attribute` block. An attribute with children
// is compound; with array it is an array (and array-of-compound when both
// are set). Connectable defaults to true.
type attributeBlock struct {
	Name        string     `hcl:"name,label"`
	Array       bool       `hcl:"array,optional"`
	Connectable *bool      `hcl:"connectable,optional"`
	Children    []string   `hcl:"children,optional"`
	Elements    []int      `hcl:"elements,optional"`
	Value       *cty.Value `hcl:"value,optional"`
}

// connectionBlock represents a `connection` block wiring one source plug
// into one destination plug, both given as full plug paths.
type connectionBlock struct {
	Source      string `hcl:"source"`
	Destination string `hcl:"destination"`
}
