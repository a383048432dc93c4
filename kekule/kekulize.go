// SPDX-License-Identifier: MIT
//
// File: kekulize.go
// Role: Kekulize, the per-isolated-system driver.

package kekule

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/partition"
)

// Kekulize partitions m into isolated ring systems and assigns bond orders to
// every system whose rings match a catalog topology and are fully flagged
// aromatic. Other systems are reported in the Result and left untouched.
//
// The assignments of all systems are merged into one Changeset and applied
// in a single step unless DryRun is set.
func Kekulize(m *molecule.Molecule, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	systems, err := partition.Systems(m)
	if err != nil {
		return nil, fmt.Errorf("kekule: Kekulize: %w", err)
	}
	_, perSystem, err := partition.Rings(m, partition.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("kekule: Kekulize: %w", err)
	}

	res := &Result{Changes: molecule.NewChangeset()}
	for i, sys := range systems {
		rings := perSystem[i].Rings()
		sr := SystemResult{Atoms: sys.AtomIndices(), Rings: len(rings), Topology: TopologyNone}

		for _, t := range Catalog() {
			if !t.matches(rings) {
				continue
			}
			sr.Topology = t
			if !allAromatic(m, rings, true) {
				sr.Reason = "not aromatic"
				break
			}
			cs, ok := Plan(m, rings, t)
			if !ok {
				sr.Reason = "no assignment"
				break
			}
			res.Changes.Merge(cs)
			sr.Kekulized = true
			break
		}
		if sr.Topology == TopologyNone {
			sr.Reason = "unsupported"
		}

		if sr.Kekulized {
			o.Logger.Debug("system kekulized", "index", i, "topology", sr.Topology, "atoms", sr.Atoms)
		} else {
			o.Logger.Debug("system skipped", "index", i, "topology", sr.Topology, "reason", sr.Reason)
		}
		res.Systems = append(res.Systems, sr)
	}

	if o.DryRun {
		return res, nil
	}
	if err := res.Changes.Apply(m); err != nil {
		return nil, fmt.Errorf("kekule: Kekulize: %w", err)
	}

	return res, nil
}
