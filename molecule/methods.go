// File: methods.go
// Role: Atom/bond lifecycle and adjacency queries on Molecule.
//
// Determinism:
//   - AtomIndices/BondIndices/ConnectedBonds/ConnectedAtoms return ascending indices.

package molecule

import (
	"fmt"
	"sort"
)

// atomicNumbers covers the organic subset needed to tell carbon from heteroatoms
// when the caller does not set AtomicNumber. Anything else stays 0.
var atomicNumbers = map[string]int{
	"H": 1, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9, "Si": 14, "P": 15,
	"S": 16, "Cl": 17, "As": 33, "Se": 34, "Br": 35, "Te": 52, "I": 53,
}

// AtomicNumberOf returns the atomic number for symbol, or 0 if unknown.
func AtomicNumberOf(symbol string) int {
	return atomicNumbers[symbol]
}

// AddAtom appends an atom with the given element symbol and returns its index.
// Complexity: O(1) amortized.
func (m *Molecule) AddAtom(symbol string, opts ...AtomOption) (int, error) {
	if symbol == "" {
		return -1, ErrEmptySymbol
	}
	a := &Atom{
		Index:        len(m.atoms),
		Symbol:       symbol,
		AtomicNumber: AtomicNumberOf(symbol),
	}
	for _, opt := range opts {
		opt(a)
	}
	m.atoms = append(m.atoms, a)
	m.adjacency = append(m.adjacency, nil)

	return a.Index, nil
}

// AddBond joins atoms a and b with the given order and returns the bond index.
//
// Errors: ErrAtomNotFound, ErrLoopNotAllowed, ErrDuplicateBond.
// Complexity: O(deg(a)).
func (m *Molecule) AddBond(a, b int, order BondOrder, opts ...BondOption) (int, error) {
	if !m.hasAtom(a) || !m.hasAtom(b) {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", a, b, ErrAtomNotFound)
	}
	if a == b {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}
	if m.BondBetween(a, b) >= 0 {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", a, b, ErrDuplicateBond)
	}
	bond := &Bond{Index: len(m.bonds), Begin: a, End: b, Order: order}
	for _, opt := range opts {
		opt(bond)
	}
	m.bonds = append(m.bonds, bond)
	m.adjacency[a] = append(m.adjacency[a], bond.Index)
	m.adjacency[b] = append(m.adjacency[b], bond.Index)

	return bond.Index, nil
}

// FromParts assembles a Molecule from atoms and bonds produced by an external
// reader. Indices are reassigned to slice positions. Bonds whose endpoints do
// not resolve are kept as-is so that Validate can report them.
func FromParts(name string, atoms []Atom, bonds []Bond) *Molecule {
	m := &Molecule{
		Name:      name,
		atoms:     make([]*Atom, len(atoms)),
		bonds:     make([]*Bond, len(bonds)),
		adjacency: make([][]int, len(atoms)),
	}
	for i := range atoms {
		a := atoms[i]
		a.Index = i
		if a.AtomicNumber == 0 {
			a.AtomicNumber = AtomicNumberOf(a.Symbol)
		}
		m.atoms[i] = &a
	}
	for i := range bonds {
		b := bonds[i]
		b.Index = i
		m.bonds[i] = &b
		if m.hasAtom(b.Begin) && m.hasAtom(b.End) && b.Begin != b.End {
			m.adjacency[b.Begin] = append(m.adjacency[b.Begin], i)
			m.adjacency[b.End] = append(m.adjacency[b.End], i)
		}
	}

	return m
}

// Validate checks that every bond resolves to two distinct atoms of m.
// Returns ErrNilMolecule or a wrapped ErrDanglingBond.
func (m *Molecule) Validate() error {
	if m == nil {
		return ErrNilMolecule
	}
	for _, b := range m.bonds {
		if !m.hasAtom(b.Begin) || !m.hasAtom(b.End) || b.Begin == b.End {
			return fmt.Errorf("bond %d (%d-%d): %w", b.Index, b.Begin, b.End, ErrDanglingBond)
		}
	}

	return nil
}

// Atom returns the atom with index i, or nil when out of range.
func (m *Molecule) Atom(i int) *Atom {
	if !m.hasAtom(i) {
		return nil
	}

	return m.atoms[i]
}

// Bond returns the bond with index i, or nil when out of range.
func (m *Molecule) Bond(i int) *Bond {
	if i < 0 || i >= len(m.bonds) {
		return nil
	}

	return m.bonds[i]
}

// Atoms returns the live atom pointers in index order.
func (m *Molecule) Atoms() []*Atom {
	return append([]*Atom(nil), m.atoms...)
}

// Bonds returns the live bond pointers in index order.
func (m *Molecule) Bonds() []*Bond {
	return append([]*Bond(nil), m.bonds...)
}

// AtomCount returns the number of atoms. O(1).
func (m *Molecule) AtomCount() int { return len(m.atoms) }

// BondCount returns the number of bonds. O(1).
func (m *Molecule) BondCount() int { return len(m.bonds) }

// AtomIndices returns 0..AtomCount()-1.
func (m *Molecule) AtomIndices() []int {
	out := make([]int, len(m.atoms))
	for i := range out {
		out[i] = i
	}

	return out
}

// BondIndices returns 0..BondCount()-1.
func (m *Molecule) BondIndices() []int {
	out := make([]int, len(m.bonds))
	for i := range out {
		out[i] = i
	}

	return out
}

// ConnectedBonds returns the indices of bonds incident to atom, ascending.
// Unknown atoms yield nil.
func (m *Molecule) ConnectedBonds(atom int) []int {
	if !m.hasAtom(atom) {
		return nil
	}
	out := append([]int(nil), m.adjacency[atom]...)
	sort.Ints(out)

	return out
}

// ConnectedAtoms returns the indices of atoms bonded to atom, ascending.
func (m *Molecule) ConnectedAtoms(atom int) []int {
	bonds := m.ConnectedBonds(atom)
	out := make([]int, 0, len(bonds))
	for _, bi := range bonds {
		out = append(out, m.bonds[bi].Other(atom))
	}
	sort.Ints(out)

	return out
}

// BondBetween returns the index of the bond joining a and b, or -1.
// Complexity: O(deg(a)).
func (m *Molecule) BondBetween(a, b int) int {
	if !m.hasAtom(a) || !m.hasAtom(b) {
		return -1
	}
	for _, bi := range m.adjacency[a] {
		if m.bonds[bi].Other(a) == b {
			return bi
		}
	}

	return -1
}

// Degree returns the number of bonds incident to atom (0 for unknown atoms).
func (m *Molecule) Degree(atom int) int {
	if !m.hasAtom(atom) {
		return 0
	}

	return len(m.adjacency[atom])
}

// ClearAromaticity resets the aromatic flag of every atom and bond.
func (m *Molecule) ClearAromaticity() {
	for _, a := range m.atoms {
		a.Aromatic = false
	}
	for _, b := range m.bonds {
		b.Aromatic = false
	}
}

// Components returns the number of connected components (isolated atoms count).
// Complexity: O(V + E).
func (m *Molecule) Components() int {
	seen := make([]bool, len(m.atoms))
	count := 0
	for start := range m.atoms {
		if seen[start] {
			continue
		}
		count++
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, bi := range m.adjacency[u] {
				v := m.bonds[bi].Other(u)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
	}

	return count
}

func (m *Molecule) hasAtom(i int) bool {
	return i >= 0 && i < len(m.atoms)
}
