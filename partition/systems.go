// SPDX-License-Identifier: MIT
//
// File: systems.go
// Role: isolated ring systems, per-system ring perception and in-ring flags.

package partition

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
	"github.com/katalvlaran/lvlchem/ringfinder"
)

// Systems returns the isolated ring systems of m as views over m, ordered by
// their smallest atom index. Two ring atoms belong to the same system when a
// path of cyclic bonds joins them; spiro atoms therefore merge systems and
// acyclic linkers separate them.
//
// Time: O(A + B) after CyclicFragment.
func Systems(m *molecule.Molecule) ([]*molecule.Subgraph, error) {
	frag, err := CyclicFragment(m)
	if err != nil {
		return nil, fmt.Errorf("partition: Systems: %w", err)
	}

	seen := make(map[int]bool, frag.AtomCount())
	var out []*molecule.Subgraph
	for _, start := range frag.AtomIndices() {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		var bonds []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, bi := range frag.ConnectedBonds(u) {
				bonds = append(bonds, bi)
				v := frag.Bond(bi).Other(u)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		out = append(out, molecule.NewSubgraph(m, queue, bonds))
	}

	return out, nil
}

// Rings runs the ring finder on every isolated system of m. It returns the
// concatenation of all rings in system order and the per-system sets, which
// are index-aligned with Systems(m).
func Rings(m *molecule.Molecule, opts ...Option) (*ring.Set, []*ring.Set, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	systems, err := Systems(m)
	if err != nil {
		return nil, nil, fmt.Errorf("partition: Rings: %w", err)
	}

	all := ring.NewSet()
	per := make([]*ring.Set, 0, len(systems))
	for i, sys := range systems {
		rs, err := ringfinder.Find(sys, ringfinder.WithLogger(o.Logger))
		if err != nil {
			return nil, nil, fmt.Errorf("partition: Rings: system %d: %w", i, err)
		}
		o.Logger.Debug("ring system", "index", i, "atoms", sys.AtomCount(), "bonds", sys.BondCount(), "rings", rs.Len())
		all.Append(rs)
		per = append(per, rs)
	}

	return all, per, nil
}

// MarkRings sets InRing on every atom and bond of m that lies on a cycle and
// clears it everywhere else. The applied edits are returned.
func MarkRings(m *molecule.Molecule) (*molecule.Changeset, error) {
	frag, err := CyclicFragment(m)
	if err != nil {
		return nil, fmt.Errorf("partition: MarkRings: %w", err)
	}

	cs := molecule.NewChangeset()
	for _, a := range m.AtomIndices() {
		cs.SetAtomInRing(a, frag.HasAtom(a))
	}
	for _, bi := range m.BondIndices() {
		cs.SetBondInRing(bi, frag.HasBond(bi))
	}
	if err := cs.Apply(m); err != nil {
		return nil, fmt.Errorf("partition: MarkRings: %w", err)
	}

	return cs, nil
}
