// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: errors, options and the Spectrum result.

package orbital

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

var (
	// ErrNoPiSystem indicates a ring system without any conjugated atom.
	ErrNoPiSystem = errors.New("orbital: no conjugated atoms")

	// ErrElectronCount indicates an electron count outside [0, 2n].
	ErrElectronCount = errors.New("orbital: electron count out of range")
)

const (
	// DefaultTolerance is the Jacobi convergence threshold.
	DefaultTolerance = 1e-10
	// DefaultMaxIterations caps Jacobi rotations per system.
	DefaultMaxIterations = 20000

	// degeneracy is the energy window grouping orbitals into one shell.
	degeneracy = 1e-6
)

// Options configures Solve, SolveRings and Analyze.
type Options struct {
	// Heteroatoms selects Streitwieser parameters for N and O in SolveRings
	// and Analyze. Solve has no per-atom electron counts and ignores it.
	Heteroatoms   bool
	Tolerance     float64
	MaxIterations int
	Logger        *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns topological parameters and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Logger:        log.New(io.Discard),
	}
}

// WithHeteroatoms enables heteroatom Coulomb and resonance parameters.
func WithHeteroatoms() Option {
	return func(o *Options) { o.Heteroatoms = true }
}

// WithTolerance sets the eigensolver tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the eigensolver rotation cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Orbital is one molecular orbital.
type Orbital struct {
	// Energy is x in E = α + x·β.
	Energy float64
	// Occupancy is 0..2; fractional inside a partially filled shell.
	Occupancy float64
	// Coefficients are indexed like Spectrum.Atoms.
	Coefficients []float64
}

// Spectrum is the Hückel solution of one π system.
type Spectrum struct {
	// Atoms is the π basis, ascending.
	Atoms     []int
	Electrons int
	// Orbitals are sorted by descending Energy.
	Orbitals []Orbital
	// PiEnergy is Σ occupancy·x, in units of β.
	PiEnergy float64
	// Delocalization is PiEnergy minus Electrons, the energy of the same
	// electrons in isolated ethylene π bonds.
	Delocalization float64
	// HOMO is the last orbital with electrons, LUMO the first not full;
	// -1 when absent.
	HOMO, LUMO int
	// ClosedShell is false when a degenerate shell is partially filled.
	ClosedShell bool
}

// Gap returns x(HOMO) - x(LUMO), 0 when either is absent.
func (s *Spectrum) Gap() float64 {
	if s.HOMO < 0 || s.LUMO < 0 {
		return 0
	}

	return s.Orbitals[s.HOMO].Energy - s.Orbitals[s.LUMO].Energy
}

// Counts returns the number of bonding, nonbonding and antibonding orbitals.
func (s *Spectrum) Counts() (bonding, nonbonding, antibonding int) {
	for _, o := range s.Orbitals {
		switch {
		case o.Energy > degeneracy:
			bonding++
		case o.Energy < -degeneracy:
			antibonding++
		default:
			nonbonding++
		}
	}

	return bonding, nonbonding, antibonding
}
