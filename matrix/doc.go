// Package matrix provides the dense symmetric linear algebra behind Hückel
// molecular-orbital analysis.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Eigen, a deterministic Jacobi eigensolver for symmetric matrices.
//   - Adjacency, the Hückel matrix of a set of atoms of a molecule.Graph:
//     Coulomb terms on the diagonal, resonance terms between bonded atoms.
//
// Matrices here are small (one row per π atom of a ring system), so O(n²)
// memory and O(n³) sweeps are acceptable.
package matrix
