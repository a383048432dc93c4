// Package builder assembles small test and demo molecules from composable
// constructors. It is used by the tests of every perception package and by the
// lvlchem CLI's built-in samples.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(opts, cons...): creates a Molecule and runs constructors in order.
//     – Link(a, b, order):    joins atoms placed by earlier constructors.
//   - Configuration:
//     – WithName:             molecule name.
//     – WithAromatic:         delocalized form (OrderAromatic + aromatic flags).
//     – WithKekule:           explicit alternating single/double form (default).
//   - Saturated skeletons:
//     – Chain(n), Cycle(n, symbol), Cyclohexane, Spiro(a, b).
//   - Ring templates:
//     – Benzene, Pyridine, Pyrrole, Furan, Thiophene.
//     – Toluene, Naphthalene, Anthracene, Phenanthrene, Biphenyl.
//     – Indole, Carbazole, Dibenzofuran, Fluorene.
//     – CyclopentadienylAnion, Tropylium.
//     – Cyclobutadiene, Quinone (never delocalized).
//
// Guarantees:
//
//   - Constructors append; atom indices of a constructor start at the number
//     of atoms already present, so fragments compose.
//   - Same options and constructor order give identical molecules.
//   - Invalid parameters return sentinel errors (ErrTooFewAtoms,
//     ErrConstructFailed) wrapped with method context.
package builder
