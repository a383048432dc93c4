// SPDX-License-Identifier: MIT
// Package: lvlchem/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Constructors append atoms; indices are offset by the atoms already present,
//     so several constructors compose into one (possibly disconnected) molecule.
//   - Determinism: same options and constructor order ⇒ identical molecules.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
)

// Constructor applies a deterministic mutation to m using the resolved builderConfig.
type Constructor func(m *molecule.Molecule, cfg builderConfig) error

// Build creates a new Molecule, resolves the builder configuration from bopts,
// and applies all constructors in order. Any constructor error is wrapped
// with "Build: %w" and returned immediately.
func Build(bopts []BuilderOption, cons ...Constructor) (*molecule.Molecule, error) {
	cfg := newBuilderConfig(bopts...)
	m := molecule.New(cfg.name)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}

// Link adds a bond between two atoms already placed by earlier constructors,
// addressed by absolute index. Use it to join fragments (biphenyl = two
// benzenes + Link(0, 6, OrderSingle)).
func Link(a, b int, order molecule.BondOrder) Constructor {
	return func(m *molecule.Molecule, _ builderConfig) error {
		if _, err := m.AddBond(a, b, order); err != nil {
			return fmt.Errorf("%s(%d,%d): %w", methodLink, a, b, err)
		}

		return nil
	}
}
