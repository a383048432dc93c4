// SPDX-License-Identifier: MIT
// Package: lvlchem/builder
//
// config.go — internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • name     = ""       (molecule name, set with WithName)
//   • aromatic = false    (Kekulé form: explicit single/double orders)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	name string
	// aromatic selects the delocalized form: ring bonds of aromatic templates
	// get OrderAromatic and both atoms and bonds get the aromatic flag.
	aromatic bool
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithName sets the name of the built molecule.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) { c.name = name }
}

// WithAromatic builds aromatic templates in their delocalized form.
func WithAromatic() BuilderOption {
	return func(c *builderConfig) { c.aromatic = true }
}

// WithKekule builds aromatic templates with explicit alternating orders (default).
func WithKekule() BuilderOption {
	return func(c *builderConfig) { c.aromatic = false }
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var c builderConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
