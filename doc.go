// Package lvlchem is an in-memory toolkit for the ring chemistry of small
// molecules: finding rings, splitting them into fused systems, deciding which
// rings are aromatic and writing alternating single/double bonds back onto
// delocalized systems.
//
// 🚀 What is lvlchem?
//
//	A deterministic, dependency-light library that brings together:
//		• Molecular graph: atoms, bonds, flags and staged edits (Changeset)
//		• Ring perception: Figueras smallest set of smallest rings
//		• Isolated ring systems: spanning forest + fundamental cycles
//		• Aromaticity: Hückel 4n+2 count, optional strict model
//		• Kekulization: 666, 566, 66, 56, 6 and 5 topologies
//		• Hückel orbitals: π energies, delocalization energy, shell status
//
// ✨ Why choose lvlchem?
//
//   - Same input ⇒ same rings, same flags, same bond orders
//   - Algorithms never half-mutate a molecule: edits commit all-or-nothing
//   - Library calls are silent; pass a charm logger to see every step
//
// Packages:
//
//	molecule/    — Atom, Bond, Molecule, Subgraph views and Changeset
//	ring/        — Ring and ordered, deduplicated ring Set
//	ringfinder/  — Figueras ring finder
//	partition/   — spanning forest, cyclic fragment, isolated systems
//	aromaticity/ — π-electron counting and aromatic flags
//	kekule/      — topology catalog and Kekulé assignment
//	matrix/      — dense symmetric eigen solver, Hückel matrices
//	orbital/     — Hückel molecular orbitals per ring system
//	perception/  — the whole pipeline driven by a TOML config
//	builder/     — named test molecules (benzene … phenanthrene)
//	fixture/     — YAML molecule documents
//
// Quick ASCII example:
//
//	    C───C
//	   //     \\
//	  C        C       benzene, Kekulé form
//	   \      /
//	    C═══C
//
//	m, _ := builder.Build(nil, builder.Benzene())
//	rep, _ := perception.Perceive(m)
//	// rep.Aromaticity.AromaticRings() holds the single 6-ring
//
//	go install github.com/katalvlaran/lvlchem/cmd/lvlchem@latest
package lvlchem
