// Package memscene is an in-memory implementation of the scene accessor
// contract, with the mutation API the traversal core deliberately lacks:
// node, attribute and connection construction.
//
// It exists so that the walk package can be exercised without a host
// session: the test suites build scenes through it, and the walk CLI loads
// HCL scene descriptions into it (see package scenehcl). It models the host
// behaviors the traversal rules exist for: a world root, default nodes at
// root level, shape types that cannot have children, sparse array plugs with
// a next-free-slot placeholder element, non-connectable arrays, and the
// one-source-per-destination connection invariant.
//
// Construction is the only place entity types are checked; requesting an
// unregistered type fails with ErrUnknownType. Traversal never constructs.
package memscene
