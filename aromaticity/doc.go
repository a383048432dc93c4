// Package aromaticity classifies rings as aromatic with Hückel's 4n+2 rule
// and flags the atoms and bonds of aromatic rings.
//
// Per-atom π-electron contribution, looking only at the two ring bonds of the
// atom:
//
//   - exactly one DOUBLE ring bond: 1
//   - no DOUBLE but delocalized (1.5) ring bonds: 1, or 2 for a heteroatom
//     whose valence is already used up by σ bonds and hydrogens (pyrrole N-H,
//     furan O, thiophene S)
//   - any other heteroatom: 2
//   - carbanion: 2, carbocation: 0
//   - carbon already flagged aromatic by an earlier pass: 1
//   - anything else (an sp3 carbon) breaks conjugation and the ring fails
//
// Two models are available. ModelHuckel applies the count alone.
// ModelStrict also requires every ring atom to carry a double or delocalized
// bond inside its isolated ring system, or a lone pair, and rejects a whole
// system that sprouts an exocyclic double or triple bond (quinones).
//
// Detect runs the chosen model over every ring of every isolated system
// until no further ring turns aromatic, so a ring whose conjugation depends
// on a fused aromatic neighbour is recognized on a later pass. Flags are
// staged in a molecule.Changeset and committed at the end, so a dry run
// leaves the molecule untouched.
package aromaticity
