// SPDX-License-Identifier: MIT
// Hückel matrix of a set of atoms.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
)

// AdjacencyOptions sets the Hückel parameters. Energies are in units of β
// relative to α: the diagonal holds h_X (α_X = α + h_X·β) and each bond
// between two basis atoms holds k_XY (β_XY = k_XY·β).
type AdjacencyOptions struct {
	// Coulomb returns h for an atom; nil means 0 for every atom.
	Coulomb func(a *molecule.Atom) float64
	// Resonance returns k for a bond; nil means 1 for every bond.
	Resonance func(b *molecule.Bond) float64
}

// AdjacencyOption configures AdjacencyOptions.
type AdjacencyOption func(*AdjacencyOptions)

// WithCoulomb sets the diagonal parameter function.
func WithCoulomb(fn func(a *molecule.Atom) float64) AdjacencyOption {
	return func(o *AdjacencyOptions) { o.Coulomb = fn }
}

// WithResonance sets the off-diagonal parameter function.
func WithResonance(fn func(b *molecule.Bond) float64) AdjacencyOption {
	return func(o *AdjacencyOptions) { o.Resonance = fn }
}

// Adjacency returns the n×n Hückel matrix of atoms, row i standing for
// atoms[i]. Only bonds with both endpoints in atoms contribute; bond order
// is ignored. With default options it is the plain adjacency matrix.
//
// Errors: ErrBadShape for an empty atom list, ErrUnknownAtom for an index
// absent from g, ErrNaNInf for a non-finite parameter.
// Complexity: O(n + Σdeg).
func Adjacency(g molecule.Graph, atoms []int, opts ...AdjacencyOption) (*Dense, error) {
	var o AdjacencyOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := len(atoms)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	row := make(map[int]int, n)
	for i, a := range atoms {
		if g.Atom(a) == nil {
			return nil, fmt.Errorf("Adjacency: atom %d: %w", a, ErrUnknownAtom)
		}
		row[a] = i
	}

	for i, a := range atoms {
		if o.Coulomb != nil {
			if err := m.Set(i, i, o.Coulomb(g.Atom(a))); err != nil {
				return nil, fmt.Errorf("Adjacency: %w", err)
			}
		}
		for _, bi := range g.ConnectedBonds(a) {
			b := g.Bond(bi)
			j, ok := row[b.Other(a)]
			if !ok || j <= i {
				continue
			}
			k := 1.0
			if o.Resonance != nil {
				k = o.Resonance(b)
			}
			if err := m.Set(i, j, k); err != nil {
				return nil, fmt.Errorf("Adjacency: %w", err)
			}
			m.data[j*n+i] = k
		}
	}

	return m, nil
}
