// SPDX-License-Identifier: MIT
//
// File: detect.go
// Role: Detect, the per-isolated-system classification driver.
//
// Determinism:
//   - Systems, rings and passes are visited in index order; the same
//     molecule always yields the same flags.

package aromaticity

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/partition"
	"github.com/katalvlaran/lvlchem/ring"
)

// Detect clears every aromatic flag of m and re-derives them.
//
// Steps:
//  1. Partition m into isolated ring systems and find the rings of each.
//  2. Pass over every ring not yet aromatic; a ring passing the model marks
//     its atoms and bonds aromatic in a private overlay that later rings see.
//  3. Repeat until a pass marks nothing new or MaxPasses is reached.
//  4. Stage the overlay for every atom and bond in a Changeset and apply it,
//     unless DryRun is set.
//
// Systems that cannot be aromatic (strict model, sprouted bond) are skipped
// with a debug record; that is a result, not an error.
// Running Detect twice on an unchanged molecule yields the same flags.
func Detect(m *molecule.Molecule, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxPasses < 1 {
		return nil, fmt.Errorf("aromaticity: Detect: %d: %w", o.MaxPasses, ErrMaxPasses)
	}

	systems, err := partition.Systems(m)
	if err != nil {
		return nil, fmt.Errorf("aromaticity: Detect: %w", err)
	}
	_, perSystem, err := partition.Rings(m, partition.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("aromaticity: Detect: %w", err)
	}

	d := &detector{
		mol:       m,
		opts:      o,
		atomFlags: make(map[int]bool),
		bondFlags: make(map[int]bool),
	}
	res := &Result{Rings: ring.NewSet(), Systems: systems}
	type entry struct {
		sys *molecule.Subgraph
		r   *ring.Ring
	}
	var entries []entry
	for i, sys := range systems {
		if o.Model == ModelStrict && HasSproutedBond(m, sys) {
			o.Logger.Debug("system skipped", "index", i, "reason", "sprouted double bond")
		}
		for _, r := range perSystem[i].Rings() {
			if res.Rings.Add(r) {
				entries = append(entries, entry{sys: sys, r: r})
			}
		}
	}
	res.Aromatic = make([]bool, len(entries))

	for res.Passes < o.MaxPasses {
		res.Passes++
		changed := false
		for i, e := range entries {
			if res.Aromatic[i] || !d.classify(e.sys, e.r) {
				continue
			}
			res.Aromatic[i] = true
			d.mark(e.r)
			changed = true
			o.Logger.Debug("ring aromatic", "pass", res.Passes, "atoms", e.r.Atoms)
		}
		if !changed {
			break
		}
	}

	res.Changes = d.changeset()
	if o.DryRun {
		return res, nil
	}
	if err := res.Changes.Apply(m); err != nil {
		return nil, fmt.Errorf("aromaticity: Detect: %w", err)
	}

	return res, nil
}

// detector holds the staged flags of one Detect call.
type detector struct {
	mol       *molecule.Molecule
	opts      Options
	atomFlags map[int]bool
	bondFlags map[int]bool
}

func (d *detector) isAromatic(a int) bool { return d.atomFlags[a] }

func (d *detector) classify(sys *molecule.Subgraph, r *ring.Ring) bool {
	if d.opts.Model == ModelStrict {
		return isAromaticStrict(d.mol, sys, r, d.isAromatic)
	}
	n, ok := piElectrons(d.mol, r, d.isAromatic)

	return ok && Huckel(n)
}

func (d *detector) mark(r *ring.Ring) {
	for _, a := range r.Atoms {
		d.atomFlags[a] = true
	}
	for _, b := range r.Bonds {
		d.bondFlags[b] = true
	}
}

// changeset stages the overlay for every atom and bond, clearing flags that
// the overlay does not set.
func (d *detector) changeset() *molecule.Changeset {
	cs := molecule.NewChangeset()
	for _, a := range d.mol.AtomIndices() {
		cs.SetAtomAromatic(a, d.atomFlags[a])
	}
	for _, b := range d.mol.BondIndices() {
		cs.SetBondAromatic(b, d.bondFlags[b])
	}

	return cs
}
