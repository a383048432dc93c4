package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlchem/perception"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRoot builds the command tree. Results go to stdout, logs to stderr.
func NewRoot(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "lvlchem",
		Short:        "lvlchem perceives rings, aromaticity and Kekulé structures",
		Long:         `lvlchem reads molecules from YAML, finds their rings, classifies aromatic rings with Hückel's rule and assigns Kekulé bond orders to fused aromatic systems.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := perception.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = perception.LoadConfig(configPath); err != nil {
					return err
				}
			}
			level := cfg.LogLevel()
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))

			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("lvlchem %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newRingsCmd())
	root.AddCommand(newAromaticityCmd())
	root.AddCommand(newKekulizeCmd())
	root.AddCommand(newOrbitalsCmd())
	root.AddCommand(newPerceiveCmd())

	return root
}

// Execute runs the CLI with args under ctx.
func Execute(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	root := NewRoot(stdout, stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
