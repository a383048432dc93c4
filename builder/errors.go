// SPDX-License-Identifier: MIT
// Package: lvlchem/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.

package builder

import "errors"

// ErrTooFewAtoms indicates a size parameter below the constructor's minimum
// (Chain n < 1, Cycle n < 3, Spiro sizes < 3).
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a nil constructor or a template that could
// not be placed.
var ErrConstructFailed = errors.New("builder: construction failed")

// Method tags used as error context.
const (
	methodLink     = "Link"
	methodChain    = "Chain"
	methodCycle    = "Cycle"
	methodSpiro    = "Spiro"
	methodTemplate = "Template"
)
