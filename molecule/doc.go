// Package molecule provides the in-memory molecular graph consumed by the
// ring perception, aromaticity and Kekulization packages.
//
// A Molecule M = (A, B) holds atoms as nodes and bonds as labeled edges:
//
//   - Atoms carry element symbol, atomic number, hybridization, implicit
//     hydrogen count, formal charge and lone pairs, all assigned upstream by
//     an atom-typing step, plus the InRing and Aromatic flags.
//   - Bonds carry their endpoints, a BondOrder and the InRing and Aromatic flags.
//   - Identity is the index: atoms and bonds are never copied by algorithms.
//
// Views:
//
//	Graph      – read interface implemented by *Molecule and *Subgraph.
//	Subgraph   – induced view (isolated ring systems, cyclic fragments).
//	Changeset  – staged bond-order/flag edits committed all-or-nothing.
//
// Core methods:
//
//	AddAtom(symbol, opts...) (int, error)            // O(1)
//	AddBond(a, b, order, opts...) (int, error)       // O(deg a)
//	ConnectedBonds(a) / ConnectedAtoms(a)            // O(d log d), ascending
//	BondBetween(a, b) int                            // O(deg a), -1 if absent
//	Validate() error                                 // ErrDanglingBond on bad input
//	Clone() *Molecule                                // O(V + E)
//
// Errors:
//
//	ErrNilMolecule, ErrAtomNotFound, ErrBondNotFound, ErrLoopNotAllowed,
//	ErrDuplicateBond, ErrDanglingBond, ErrEmptySymbol.
//
// A Molecule is not safe for concurrent use. Different instances are independent.
package molecule
