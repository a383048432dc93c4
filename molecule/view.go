// File: view.go
// Role: Non-mutating induced views over a Molecule.
// Determinism:
//   - AtomIndices/BondIndices/ConnectedBonds are ascending.
// Notes:
//   - A Subgraph never copies atoms or bonds; Atom/Bond return the parent's
//     live pointers, so flags written through them land on the parent.

package molecule

import "sort"

// Subgraph is the view of a Molecule restricted to a set of atoms and bonds.
// Bonds whose endpoints are not both in the atom set are dropped.
type Subgraph struct {
	parent *Molecule
	atoms  []int
	bonds  []int

	atomSet map[int]bool
	bondSet map[int]bool
	adj     map[int][]int
}

// NewSubgraph builds the view of m over the given atoms and bonds.
// Unknown indices are ignored. Complexity: O(A + B log B).
func NewSubgraph(m *Molecule, atoms, bonds []int) *Subgraph {
	s := &Subgraph{
		parent:  m,
		atomSet: make(map[int]bool, len(atoms)),
		bondSet: make(map[int]bool, len(bonds)),
		adj:     make(map[int][]int, len(atoms)),
	}
	for _, a := range atoms {
		if m.Atom(a) == nil || s.atomSet[a] {
			continue
		}
		s.atomSet[a] = true
		s.atoms = append(s.atoms, a)
	}
	for _, bi := range bonds {
		b := m.Bond(bi)
		if b == nil || s.bondSet[bi] || !s.atomSet[b.Begin] || !s.atomSet[b.End] {
			continue
		}
		s.bondSet[bi] = true
		s.bonds = append(s.bonds, bi)
		s.adj[b.Begin] = append(s.adj[b.Begin], bi)
		s.adj[b.End] = append(s.adj[b.End], bi)
	}
	sort.Ints(s.atoms)
	sort.Ints(s.bonds)
	for a := range s.adj {
		sort.Ints(s.adj[a])
	}

	return s
}

// InducedSubgraph returns the view of m over keep and every bond whose
// endpoints are both kept.
func InducedSubgraph(m *Molecule, keep []int) *Subgraph {
	set := make(map[int]bool, len(keep))
	for _, a := range keep {
		set[a] = true
	}
	var bonds []int
	for _, b := range m.bonds {
		if set[b.Begin] && set[b.End] {
			bonds = append(bonds, b.Index)
		}
	}

	return NewSubgraph(m, keep, bonds)
}

// Parent returns the molecule the view is taken over.
func (s *Subgraph) Parent() *Molecule { return s.parent }

// AtomIndices returns the atoms of the view, ascending.
func (s *Subgraph) AtomIndices() []int { return append([]int(nil), s.atoms...) }

// BondIndices returns the bonds of the view, ascending.
func (s *Subgraph) BondIndices() []int { return append([]int(nil), s.bonds...) }

// Atom returns the parent atom i if it belongs to the view.
func (s *Subgraph) Atom(i int) *Atom {
	if !s.atomSet[i] {
		return nil
	}

	return s.parent.Atom(i)
}

// Bond returns the parent bond i if it belongs to the view.
func (s *Subgraph) Bond(i int) *Bond {
	if !s.bondSet[i] {
		return nil
	}

	return s.parent.Bond(i)
}

// ConnectedBonds returns the view's bonds incident to atom.
func (s *Subgraph) ConnectedBonds(atom int) []int {
	return append([]int(nil), s.adj[atom]...)
}

// HasAtom reports whether atom belongs to the view.
func (s *Subgraph) HasAtom(atom int) bool { return s.atomSet[atom] }

// HasBond reports whether bond belongs to the view.
func (s *Subgraph) HasBond(bond int) bool { return s.bondSet[bond] }

// AtomCount returns the number of atoms in the view.
func (s *Subgraph) AtomCount() int { return len(s.atoms) }

// BondCount returns the number of bonds in the view.
func (s *Subgraph) BondCount() int { return len(s.bonds) }
