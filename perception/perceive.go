package perception

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlchem/aromaticity"
	"github.com/katalvlaran/lvlchem/kekule"
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/orbital"
	"github.com/katalvlaran/lvlchem/partition"
	"github.com/katalvlaran/lvlchem/ring"
)

// Options configures Perceive.
type Options struct {
	Config Config
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option {
	return func(o *Options) { o.Config = c }
}

// WithLogger sets the logger handed to every stage. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Report collects the outputs of every stage.
type Report struct {
	// InRing holds the InRing edits applied by the partitioner.
	InRing      *molecule.Changeset
	Aromaticity *aromaticity.Result
	// Orbitals is index-aligned with Aromaticity.Systems; nil when the
	// stage is disabled.
	Orbitals []*orbital.Spectrum
	// Kekule is nil when the stage is disabled.
	Kekule *kekule.Result
}

// Rings is a shortcut for Aromaticity.Rings.
func (r *Report) Rings() *ring.Set { return r.Aromaticity.Rings }

// Perceive runs the configured stages on m, mutating its flags and, with
// Kekulization enabled, its bond orders.
func Perceive(m *molecule.Molecule, opts ...Option) (*Report, error) {
	o := Options{Config: DefaultConfig(), Logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Config.Validate(); err != nil {
		return nil, fmt.Errorf("perception: Perceive: %w", err)
	}
	if m == nil {
		return nil, molecule.ErrNilMolecule
	}

	rep := &Report{}
	var err error
	if rep.InRing, err = partition.MarkRings(m); err != nil {
		return nil, fmt.Errorf("perception: Perceive: %w", err)
	}

	rep.Aromaticity, err = aromaticity.Detect(m,
		aromaticity.WithModel(o.Config.Model()),
		aromaticity.WithMaxPasses(o.Config.Aromaticity.MaxPasses),
		aromaticity.WithLogger(o.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("perception: Perceive: %w", err)
	}
	o.Logger.Info("aromaticity",
		"molecule", m.Name,
		"rings", rep.Aromaticity.Rings.Len(),
		"aromatic", len(rep.Aromaticity.AromaticRings()),
		"passes", rep.Aromaticity.Passes)

	if o.Config.Orbital.Enabled {
		oopts := []orbital.Option{orbital.WithLogger(o.Logger)}
		if o.Config.Orbital.Heteroatoms {
			oopts = append(oopts, orbital.WithHeteroatoms())
		}
		if rep.Orbitals, err = orbital.Analyze(m, oopts...); err != nil {
			return nil, fmt.Errorf("perception: Perceive: %w", err)
		}
	}

	if !o.Config.Kekule.Enabled {
		return rep, nil
	}
	rep.Kekule, err = kekule.Kekulize(m, kekule.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("perception: Perceive: %w", err)
	}
	o.Logger.Info("kekulize",
		"molecule", m.Name,
		"systems", len(rep.Kekule.Systems),
		"kekulized", rep.Kekule.Kekulized())

	return rep, nil
}
