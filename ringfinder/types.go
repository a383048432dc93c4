// Package ringfinder provides tunable options for ring perception over a
// molecule.Graph.
package ringfinder

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures Find via functional arguments.
type Option func(*Options)

// Options holds parameters for Find.
type Options struct {
	// Logger receives debug records for every ring found and every bond
	// eliminated. Defaults to a logger writing to io.Discard.
	Logger *log.Logger
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
