// Package cli implements the lvlchem command-line interface.
//
// # Commands
//
//   - build: write a template molecule as YAML
//   - rings: list the rings of every molecule in a YAML file
//   - aromaticity: classify rings as aromatic
//   - kekulize: assign alternating orders to aromatic systems
//   - orbitals: Hückel orbital energies of every ring system
//   - perceive: run the full pipeline configured by --config
//
// All commands accept --verbose (-v) for debug logging. The logger and the
// loaded configuration travel through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlchem/perception"
)

// newLogger writes to w at level with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs a message with the time elapsed since it was created.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default when no logger is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, c perception.Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext falls back to perception.DefaultConfig.
func configFromContext(ctx context.Context) perception.Config {
	if c, ok := ctx.Value(configKey).(perception.Config); ok {
		return c
	}
	return perception.DefaultConfig()
}
