// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Forest result type and functional options for the partitioner.

package partition

import (
	"io"

	"github.com/charmbracelet/log"
)

// Forest is a spanning forest of a molecule.
type Forest struct {
	// Tree holds the bonds that joined two separate components, ascending.
	Tree []int
	// Closure holds the remaining bonds, each closing one independent cycle, ascending.
	Closure []int
}

// Options configures Rings.
type Options struct {
	// Logger receives one debug record per isolated system. Defaults to io.Discard.
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
