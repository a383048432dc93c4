package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlchem/aromaticity"
	"github.com/katalvlaran/lvlchem/builder"
	"github.com/katalvlaran/lvlchem/fixture"
	"github.com/katalvlaran/lvlchem/kekule"
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/orbital"
	"github.com/katalvlaran/lvlchem/partition"
	"github.com/katalvlaran/lvlchem/perception"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

var templates = map[string]func() builder.Constructor{
	"anthracene":             builder.Anthracene,
	"benzene":                builder.Benzene,
	"biphenyl":               builder.Biphenyl,
	"carbazole":              builder.Carbazole,
	"cyclobutadiene":         builder.Cyclobutadiene,
	"cyclohexane":            builder.Cyclohexane,
	"cyclopentadienyl-anion": builder.CyclopentadienylAnion,
	"dibenzofuran":           builder.Dibenzofuran,
	"fluorene":               builder.Fluorene,
	"furan":                  builder.Furan,
	"indole":                 builder.Indole,
	"naphthalene":            builder.Naphthalene,
	"phenanthrene":           builder.Phenanthrene,
	"pyridine":               builder.Pyridine,
	"pyrrole":                builder.Pyrrole,
	"quinone":                builder.Quinone,
	"thiophene":              builder.Thiophene,
	"toluene":                builder.Toluene,
	"tropylium":              builder.Tropylium,
}

func templateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", outputText, "output format: text or yaml")
}

func checkOutput(output string) error {
	if output != outputText && output != outputYAML {
		return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputText, outputYAML)
	}
	return nil
}

// eachMolecule loads path and calls fn for every molecule, stopping on
// cancellation. With yaml output the processed molecules are written to w.
func eachMolecule(cmd *cobra.Command, path, output string, fn func(m *molecule.Molecule) error) error {
	if err := checkOutput(output); err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	ms, err := fixture.Load(path)
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	for _, m := range ms {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(m); err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
	}
	prog.done(fmt.Sprintf("Processed %d molecules from %s", len(ms), path))

	if output == outputYAML {
		return fixture.Encode(cmd.OutOrStdout(), ms...)
	}
	return nil
}

// textOut returns the writer for text reports, io.Discard under yaml output.
func textOut(cmd *cobra.Command, output string) io.Writer {
	if output == outputYAML {
		return io.Discard
	}
	return cmd.OutOrStdout()
}

func newBuildCmd() *cobra.Command {
	var aromatic bool

	cmd := &cobra.Command{
		Use:       "build TEMPLATE",
		Short:     "Write a template molecule as YAML",
		Long:      "Write a template molecule as YAML. Templates: " + strings.Join(templateNames(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: templateNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, ok := templates[args[0]]
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}
			opts := []builder.BuilderOption{builder.WithName(args[0])}
			if aromatic {
				opts = append(opts, builder.WithAromatic())
			}
			m, err := builder.Build(opts, ctor())
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("built", "template", args[0], "atoms", m.AtomCount(), "bonds", m.BondCount())
			return fixture.Encode(cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().BoolVar(&aromatic, "aromatic", false, "write the delocalized form")
	return cmd
}

func newRingsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rings FILE",
		Short: "List the rings of every molecule, system by system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := textOut(cmd, output)
			logger := loggerFromContext(cmd.Context())
			return eachMolecule(cmd, args[0], output, func(m *molecule.Molecule) error {
				if _, err := partition.MarkRings(m); err != nil {
					return err
				}
				all, systems, err := partition.Rings(m, partition.WithLogger(logger))
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: %d rings in %d systems\n", m.Name, all.Len(), len(systems))
				for i, sys := range systems {
					for _, r := range sys.Rings() {
						fmt.Fprintf(w, "  system %d: %s\n", i, r)
					}
				}
				return nil
			})
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func newAromaticityCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "aromaticity FILE",
		Short: "Classify rings as aromatic and set the aromatic flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := textOut(cmd, output)
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())
			return eachMolecule(cmd, args[0], output, func(m *molecule.Molecule) error {
				res, err := aromaticity.Detect(m,
					aromaticity.WithModel(cfg.Model()),
					aromaticity.WithMaxPasses(cfg.Aromaticity.MaxPasses),
					aromaticity.WithLogger(logger),
				)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: %d of %d rings aromatic (%s, %d passes)\n",
					m.Name, len(res.AromaticRings()), res.Rings.Len(), cfg.Model(), res.Passes)
				for i, r := range res.Rings.Rings() {
					mark := " "
					if res.Aromatic[i] {
						mark = "*"
					}
					fmt.Fprintf(w, "  %s %s\n", mark, r)
				}
				return nil
			})
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func newKekulizeCmd() *cobra.Command {
	var (
		output string
		detect bool
	)

	cmd := &cobra.Command{
		Use:   "kekulize FILE",
		Short: "Assign alternating single and double bonds to aromatic systems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := textOut(cmd, output)
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())
			return eachMolecule(cmd, args[0], output, func(m *molecule.Molecule) error {
				if detect {
					if _, err := aromaticity.Detect(m,
						aromaticity.WithModel(cfg.Model()),
						aromaticity.WithMaxPasses(cfg.Aromaticity.MaxPasses),
						aromaticity.WithLogger(logger),
					); err != nil {
						return err
					}
				}
				res, err := kekule.Kekulize(m, kekule.WithLogger(logger))
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: %d of %d systems kekulized\n", m.Name, res.Kekulized(), len(res.Systems))
				for _, s := range res.Systems {
					status := "ok"
					if !s.Kekulized {
						status = "skipped: " + s.Reason
					}
					fmt.Fprintf(w, "  %v rings=%d topology=%s %s\n", s.Atoms, s.Rings, s.Topology, status)
				}
				return nil
			})
		},
	}
	addOutputFlag(cmd, &output)
	cmd.Flags().BoolVar(&detect, "detect", true, "run aromaticity detection first")
	return cmd
}

func newOrbitalsCmd() *cobra.Command {
	var (
		output      string
		heteroatoms bool
	)

	cmd := &cobra.Command{
		Use:   "orbitals FILE",
		Short: "Solve the Hückel orbitals of every ring system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := textOut(cmd, output)
			opts := []orbital.Option{orbital.WithLogger(loggerFromContext(cmd.Context()))}
			if heteroatoms || configFromContext(cmd.Context()).Orbital.Heteroatoms {
				opts = append(opts, orbital.WithHeteroatoms())
			}
			return eachMolecule(cmd, args[0], output, func(m *molecule.Molecule) error {
				spectra, err := orbital.Analyze(m, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: %d systems\n", m.Name, len(spectra))
				for i, s := range spectra {
					if s == nil {
						fmt.Fprintf(w, "  system %d: no π atoms\n", i)
						continue
					}
					shell := "closed"
					if !s.ClosedShell {
						shell = "open"
					}
					fmt.Fprintf(w, "  system %d: atoms=%d electrons=%d E=%.3fβ DE=%.3fβ gap=%.3f %s\n",
						i, len(s.Atoms), s.Electrons, s.PiEnergy, s.Delocalization, s.Gap(), shell)
				}
				return nil
			})
		},
	}
	addOutputFlag(cmd, &output)
	cmd.Flags().BoolVar(&heteroatoms, "heteroatoms", false, "use heteroatom Coulomb and resonance parameters")
	return cmd
}

func newPerceiveCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "perceive FILE",
		Short: "Run ring, aromaticity and optional Kekulé perception",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := textOut(cmd, output)
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())
			return eachMolecule(cmd, args[0], output, func(m *molecule.Molecule) error {
				rep, err := perception.Perceive(m, perception.WithConfig(cfg), perception.WithLogger(logger))
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: rings=%d aromatic=%d", m.Name, rep.Rings().Len(), len(rep.Aromaticity.AromaticRings()))
				for i, s := range rep.Orbitals {
					if s != nil {
						fmt.Fprintf(w, " E%d=%.3f", i, s.PiEnergy)
					}
				}
				if rep.Kekule != nil {
					fmt.Fprintf(w, " kekulized=%d", rep.Kekule.Kekulized())
				}
				fmt.Fprintln(w)
				return nil
			})
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}
