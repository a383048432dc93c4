// SPDX-License-Identifier: MIT
// Package: lvlchem/builder
//
// impl_saturated.go — Chain(n), Cycle(n, symbol), Spiro(a, b).
//
// Contract:
//   • Atoms are sp3 with implicit hydrogens filling valence (C 4, N 3, O/S 2).
//   • Atoms are appended in ascending order; bonds emitted i -> i+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
)

const (
	minChainAtoms = 1
	minCycleAtoms = 3
)

var valence = map[string]int{"C": 4, "N": 3, "O": 2, "S": 2}
var lonePairs = map[string]int{"N": 1, "O": 2, "S": 2}

// Chain builds an n-atom saturated carbon chain.
func Chain(n int) Constructor {
	return func(m *molecule.Molecule, _ builderConfig) error {
		if n < minChainAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainAtoms, ErrTooFewAtoms)
		}
		first := m.AtomCount()
		for i := 0; i < n; i++ {
			heavy := 2
			if n == 1 {
				heavy = 0
			} else if i == 0 || i == n-1 {
				heavy = 1
			}
			if _, err := addSaturated(m, "C", heavy); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
		}
		for i := 1; i < n; i++ {
			if _, err := m.AddBond(first+i-1, first+i, molecule.OrderSingle); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
		}

		return nil
	}
}

// Cycle builds an n-membered saturated ring of the given element.
func Cycle(n int, symbol string) Constructor {
	return func(m *molecule.Molecule, _ builderConfig) error {
		if n < minCycleAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleAtoms, ErrTooFewAtoms)
		}
		first := m.AtomCount()
		for i := 0; i < n; i++ {
			if _, err := addSaturated(m, symbol, 2); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}
		for i := 0; i < n; i++ {
			if _, err := m.AddBond(first+i, first+(i+1)%n, molecule.OrderSingle); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}

// Spiro builds two saturated carbon rings of sizes a and b sharing one atom,
// which is placed first.
func Spiro(a, b int) Constructor {
	return func(m *molecule.Molecule, _ builderConfig) error {
		if a < minCycleAtoms || b < minCycleAtoms {
			return fmt.Errorf("%s: sizes %d,%d < min=%d: %w", methodSpiro, a, b, minCycleAtoms, ErrTooFewAtoms)
		}
		center, err := addSaturated(m, "C", 4)
		if err != nil {
			return fmt.Errorf("%s: %w", methodSpiro, err)
		}
		for _, size := range []int{a, b} {
			prev := center
			for i := 1; i < size; i++ {
				cur, err := addSaturated(m, "C", 2)
				if err != nil {
					return fmt.Errorf("%s: %w", methodSpiro, err)
				}
				if _, err = m.AddBond(prev, cur, molecule.OrderSingle); err != nil {
					return fmt.Errorf("%s: %w", methodSpiro, err)
				}
				prev = cur
			}
			if _, err := m.AddBond(prev, center, molecule.OrderSingle); err != nil {
				return fmt.Errorf("%s: %w", methodSpiro, err)
			}
		}

		return nil
	}
}

// addSaturated appends an sp3 atom whose hydrogens fill the valence left by
// heavy bonded neighbours.
func addSaturated(m *molecule.Molecule, symbol string, heavy int) (int, error) {
	h := valence[symbol] - heavy
	if h < 0 {
		h = 0
	}

	return m.AddAtom(symbol,
		molecule.WithHybridization(molecule.HybridSP3),
		molecule.WithHydrogens(h),
		molecule.WithLonePairs(lonePairs[symbol]),
	)
}
