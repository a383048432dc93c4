// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: π basis selection, Hückel matrix, diagonalization and filling.

package orbital

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlchem/aromaticity"
	"github.com/katalvlaran/lvlchem/matrix"
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/partition"
	"github.com/katalvlaran/lvlchem/ring"
)

// Streitwieser parameters keyed by element and π-electron contribution.
var (
	coulomb = map[string]map[int]float64{
		"N": {1: 0.5, 2: 1.5},
		"O": {1: 1.0, 2: 2.0},
	}
	resonance = map[string]map[int]float64{
		"N": {1: 1.0, 2: 0.8},
		"O": {1: 1.0, 2: 0.8},
	}
)

// Solve diagonalizes the topological Hückel matrix of atoms and fills the
// orbitals with electrons.
func Solve(g molecule.Graph, atoms []int, electrons int, opts ...Option) (*Spectrum, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	basis := append([]int(nil), atoms...)
	sort.Ints(basis)

	return solve(g, basis, electrons, nil, o)
}

// SolveRings builds the π basis of rings, which should form one ring
// system: every atom that contributes to the π count of at least one ring,
// with the contribution taken from the first such ring. An sp3 bridge that
// breaks every ring it sits on is left out of the basis.
//
// Returns ErrNoPiSystem when no atom qualifies.
func SolveRings(g molecule.Graph, rings []*ring.Ring, opts ...Option) (*Spectrum, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	perAtom := make(map[int]int)
	for _, r := range rings {
		for _, a := range r.Atoms {
			if _, seen := perAtom[a]; seen {
				continue
			}
			if e, ok := aromaticity.AtomPiElectrons(g, r, a); ok {
				perAtom[a] = e
			}
		}
	}
	if len(perAtom) == 0 {
		return nil, ErrNoPiSystem
	}

	basis := make([]int, 0, len(perAtom))
	electrons := 0
	for a, e := range perAtom {
		basis = append(basis, a)
		electrons += e
	}
	sort.Ints(basis)

	if !o.Heteroatoms {
		perAtom = nil
	}

	return solve(g, basis, electrons, perAtom, o)
}

// Analyze runs SolveRings on every isolated ring system of m. The result is
// index-aligned with the systems; a system without π atoms gets nil.
func Analyze(m *molecule.Molecule, opts ...Option) ([]*Spectrum, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil {
		return nil, molecule.ErrNilMolecule
	}
	_, perSystem, err := partition.Rings(m, partition.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("orbital: Analyze: %w", err)
	}

	out := make([]*Spectrum, len(perSystem))
	for i, rs := range perSystem {
		s, err := SolveRings(m, rs.Rings(), opts...)
		if errors.Is(err, ErrNoPiSystem) {
			o.Logger.Debug("system skipped", "index", i, "reason", "no π atoms")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("orbital: Analyze: system %d: %w", i, err)
		}
		o.Logger.Debug("π system",
			"index", i,
			"atoms", len(s.Atoms),
			"electrons", s.Electrons,
			"energy", s.PiEnergy,
			"closed", s.ClosedShell)
		out[i] = s
	}

	return out, nil
}

// solve assumes basis is sorted. perAtom non-nil enables heteroatom
// parameters.
func solve(g molecule.Graph, basis []int, electrons int, perAtom map[int]int, o Options) (*Spectrum, error) {
	if len(basis) == 0 {
		return nil, ErrNoPiSystem
	}
	if electrons < 0 || electrons > 2*len(basis) {
		return nil, fmt.Errorf("orbital: %d electrons on %d atoms: %w", electrons, len(basis), ErrElectronCount)
	}

	var mopts []matrix.AdjacencyOption
	if perAtom != nil {
		mopts = append(mopts,
			matrix.WithCoulomb(func(a *molecule.Atom) float64 {
				return coulomb[a.Symbol][perAtom[a.Index]]
			}),
			matrix.WithResonance(func(b *molecule.Bond) float64 {
				k := 1.0
				for _, end := range []int{b.Begin, b.End} {
					at := g.Atom(end)
					if v, ok := resonance[at.Symbol][perAtom[end]]; ok {
						k *= v
					}
				}
				return k
			}),
		)
	}
	h, err := matrix.Adjacency(g, basis, mopts...)
	if err != nil {
		return nil, fmt.Errorf("orbital: %w", err)
	}
	vals, vecs, err := matrix.Eigen(h, o.Tolerance, o.MaxIterations)
	if err != nil {
		return nil, fmt.Errorf("orbital: %w", err)
	}

	s := &Spectrum{Atoms: basis, Electrons: electrons, Orbitals: make([]Orbital, len(vals))}
	for k, x := range vals {
		s.Orbitals[k] = Orbital{Energy: x, Coefficients: normalizeSign(vecs.Column(k))}
	}
	s.fill()

	return s, nil
}

// fill distributes the electrons shell by shell.
func (s *Spectrum) fill() {
	left := s.Electrons
	s.ClosedShell = true
	for start := 0; start < len(s.Orbitals); {
		end := start + 1
		for end < len(s.Orbitals) && math.Abs(s.Orbitals[end].Energy-s.Orbitals[start].Energy) < degeneracy {
			end++
		}
		size := end - start
		occ := 2.0
		if left < 2*size {
			occ = float64(left) / float64(size)
			if left > 0 {
				s.ClosedShell = false
			}
			left = 0
		} else {
			left -= 2 * size
		}
		for k := start; k < end; k++ {
			s.Orbitals[k].Occupancy = occ
		}
		start = end
	}

	s.HOMO, s.LUMO = -1, -1
	for k, orb := range s.Orbitals {
		s.PiEnergy += orb.Occupancy * orb.Energy
		if orb.Occupancy > 0 {
			s.HOMO = k
		}
		if orb.Occupancy < 2 && s.LUMO < 0 {
			s.LUMO = k
		}
	}
	s.Delocalization = s.PiEnergy - float64(s.Electrons)
}

// normalizeSign flips v so its first non-negligible coefficient is positive.
func normalizeSign(v []float64) []float64 {
	for _, c := range v {
		if math.Abs(c) < degeneracy {
			continue
		}
		if c < 0 {
			for i := range v {
				v[i] = -v[i]
			}
		}
		break
	}

	return v
}
