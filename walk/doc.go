// Package walk implements cycle-safe, order-sensitive traversal over the two
// superimposed graphs of a host scene: the hierarchy tree and the dependency
// digraph, plus the nested array/compound tree inside a single attribute.
//
// All traversals are expressed as lazy pull-based sequences (iter.Seq /
// iter.Seq2). Each call builds fresh local state (work list, visited set), so
// sequences are restartable, finite even over cyclic dependency graphs, and
// always safe to abandon early. Nothing in this package mutates the scene.
//
// The package knows nothing about any concrete host; it consumes the accessor
// contract defined in package scene. See package memscene for a reference
// implementation used by the tests and the walk CLI.
package walk
