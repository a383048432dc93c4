// Package fixture reads and writes molecules as YAML documents.
//
//	name: pyrrole
//	atoms:
//	  - {symbol: N, hybridization: sp2, hydrogens: 1, lone_pairs: 1}
//	  - {symbol: C, hybridization: sp2, hydrogens: 1}
//	bonds:
//	  - {begin: 0, end: 1, order: single}
//
// A stream may hold several documents separated by "---". Atom indices in
// bonds refer to the position of the atom in its document.
package fixture
