// Package partition splits a molecule into isolated ring systems: maximal
// groups of atoms and bonds that lie on cycles and are connected to each
// other without passing through an acyclic bond.
//
// What & Why
//
//   - A bond lies on a cycle exactly when it is a closure bond of a spanning
//     forest or a tree bond on the fundamental cycle of some closure bond.
//   - Restricting ring perception, aromaticity and Kekulé assignment to one
//     isolated system at a time keeps each search small and lets a failure in
//     one system leave the others untouched.
//
// Algorithms Provided
//
//   - SpanningForest(m): union-find over bonds in index order. Every bond
//     joining two already connected atoms is a closure bond.
//     Time O(B·α(A)). Memory O(A + B).
//   - CyclicFragment(m): closure bonds plus the tree path between their
//     endpoints. Time O(C·(A + B)) for C closure bonds.
//   - Systems(m): connected components of the cyclic fragment, found with a
//     FIFO queue. Ordered by smallest atom index.
//   - Rings(m, opts...): ringfinder.Find per system, plus the concatenated set.
//   - MarkRings(m): writes InRing flags for every atom and bond.
//
// Error Conditions
//
//   - molecule.ErrNilMolecule: m is nil.
//   - molecule.ErrDanglingBond: a bond endpoint does not resolve.
package partition
