// Package scenehcl loads declarative HCL scene descriptions into an
// in-memory scene (package memscene), for tests, tooling and the walk CLI.
//
// A scene file declares nodes with their hierarchy, attributes and
// connections:
//
//	node "transform" "root" {}
//
//	node "joint" "arm" {
//	  parent = "root"
//
//	  attribute "t" {
//	    children = ["tx", "ty", "tz"]
//	  }
//	  attribute "weights" {
//	    array    = true
//	    elements = [0, 3]
//	  }
//	}
//
//	connection {
//	  source      = "root.t.tx"
//	  destination = "arm.t.tx"
//	}
//
// Parent nodes must be declared before their children. Attribute values are
// arbitrary cty values stored on the plug.
package scenehcl
