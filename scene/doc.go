// Package scene defines the accessor contract between the traversal core and
// a host scene database.
//
// # Why Scene Package Exists
//
// The traversal algorithms in package walk never own graph data. They operate
// on opaque handles supplied by a host application (a scene-authoring tool, a
// rig inspector, an exporter) and ask the host narrow questions through the
// Accessor interface: "what is this node's parent", "which plugs feed this
// one", "what is this handle's identity". Everything the core knows about a
// scene flows through this contract.
//
// This separation provides several benefits:
//   - The core stays free of any host SDK import.
//   - Hosts with transient handle wrappers still get correct visited-set
//     behavior, because identity is an explicit accessor responsibility.
//   - Tests run against the in-memory implementation in package memscene
//     without a host session.
//
// # Handles
//
// Node and Plug are deliberately empty interfaces. Two handle values must
// never be compared with ==; two distinct wrappers may refer to the same
// underlying entity. Use Accessor.NodeIdentity and Accessor.PlugIdentity for
// set membership and equality decisions.
//
// # Thread-Safety
//
// The contract is read-only and single-writer: implementations are queried
// synchronously by one traversal at a time and must not be mutated while a
// traversal is in progress. The core never calls back into mutating APIs.
package scene
