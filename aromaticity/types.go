// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Model enum, options, Result and sentinel errors.

package aromaticity

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// ErrMaxPasses indicates a non-positive pass limit.
var ErrMaxPasses = errors.New("aromaticity: max passes must be positive")

// ErrUnknownModel indicates a model name that ParseModel does not recognize.
var ErrUnknownModel = errors.New("aromaticity: unknown model")

// Model selects the per-ring test used by Detect.
type Model int

const (
	// ModelHuckel counts π electrons and applies 4n+2.
	ModelHuckel Model = iota
	// ModelStrict adds the sp2/lone-pair test and the sprouted-bond rule.
	ModelStrict
)

// String returns "huckel" or "strict".
func (m Model) String() string {
	switch m {
	case ModelHuckel:
		return "huckel"
	case ModelStrict:
		return "strict"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel is the inverse of String; matching is case-insensitive.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "huckel", "hückel", "":
		return ModelHuckel, nil
	case "strict":
		return ModelStrict, nil
	default:
		return ModelHuckel, fmt.Errorf("%q: %w", s, ErrUnknownModel)
	}
}

// DefaultMaxPasses bounds the fixed-point iteration of Detect.
const DefaultMaxPasses = 8

// Options configures Detect.
type Options struct {
	Model     Model
	MaxPasses int
	// DryRun computes the flags without writing them to the molecule.
	DryRun bool
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns ModelHuckel, DefaultMaxPasses and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Model:     ModelHuckel,
		MaxPasses: DefaultMaxPasses,
		Logger:    log.New(io.Discard),
	}
}

// WithModel selects the classification model.
func WithModel(m Model) Option {
	return func(o *Options) { o.Model = m }
}

// WithMaxPasses bounds the number of classification passes.
func WithMaxPasses(n int) Option {
	return func(o *Options) { o.MaxPasses = n }
}

// WithDryRun stages the flags in Result.Changes without applying them.
func WithDryRun() Option {
	return func(o *Options) { o.DryRun = true }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of Detect.
type Result struct {
	// Rings holds every ring found, system by system.
	Rings *ring.Set
	// Aromatic is index-aligned with Rings.Rings().
	Aromatic []bool
	// Systems are the isolated ring systems the rings were taken from.
	Systems []*molecule.Subgraph
	// Changes holds the aromatic flag of every atom and bond of the molecule.
	Changes *molecule.Changeset
	// Passes is the number of classification passes run.
	Passes int
}

// AromaticRings returns the rings classified aromatic, in ring order.
func (r *Result) AromaticRings() []*ring.Ring {
	var out []*ring.Ring
	for i, rg := range r.Rings.Rings() {
		if r.Aromatic[i] {
			out = append(out, rg)
		}
	}

	return out
}
