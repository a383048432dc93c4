// File: methods_clone.go
// Role: Deep copies used as scratch state.
//
// A clone shares nothing with its source: algorithms that need
// all-or-nothing semantics work on a clone and commit a Changeset.

package molecule

// Clone returns a deep copy of m: atoms, bonds and adjacency.
// Indices are preserved, so a Changeset computed on the clone applies to m.
// Complexity: O(V + E).
func (m *Molecule) Clone() *Molecule {
	out := &Molecule{
		Name:      m.Name,
		atoms:     make([]*Atom, len(m.atoms)),
		bonds:     make([]*Bond, len(m.bonds)),
		adjacency: make([][]int, len(m.adjacency)),
	}
	for i, a := range m.atoms {
		cp := *a
		out.atoms[i] = &cp
	}
	for i, b := range m.bonds {
		cp := *b
		out.bonds[i] = &cp
	}
	for i, adj := range m.adjacency {
		out.adjacency[i] = append([]int(nil), adj...)
	}

	return out
}

// Orders snapshots the bond orders in index order.
func (m *Molecule) Orders() []BondOrder {
	out := make([]BondOrder, len(m.bonds))
	for i, b := range m.bonds {
		out[i] = b.Order
	}

	return out
}
