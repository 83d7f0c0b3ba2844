// SPDX-License-Identifier: MIT
// Package: lvseq/internal/cli

// Package cli implements the lvseq command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseq/internal/config"
	"github.com/katalvlaran/lvseq/internal/store"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	dbPath   string

	cfg    config.Config
	logger *log.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lvseq",
		Short: "Generate well-known integer sequences",
		Long: titleStyle.Render("lvseq") + subtitleStyle.Render(" - integer sequences of the OEIS") + `

Generates the first N terms of closed-form, recursive, scanning and
self-referential sequences with exact big-integer arithmetic.

` + subtitleStyle.Render("Examples:") + `
  lvseq list                      List every sequence
  lvseq gen fibonacci 20          First 20 Fibonacci numbers
  lvseq gen perfect 4 -f json     JSON output
  lvseq info recaman              Describe a sequence
  lvseq gen prime 1000 --save     Save the run to the history
  lvseq runs list                 Show saved runs`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default .lvseq.toml or $HOME/.config/lvseq/config.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "run history database (default $HOME/.config/lvseq/runs.db)")

	root.AddCommand(
		newGenCmd(a),
		newInfoCmd(a),
		newListCmd(a),
		newOrdinalCmd(a),
		newRunsCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.dbPath != "" {
		cfg.DB = a.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "lvseq",
		Level:  cfg.Level(),
	})

	return nil
}

func (a *app) openStore() (store.Store, error) {
	a.logger.Debug("opening run history", "db", a.cfg.DB)
	s, err := store.NewSQLiteStore(a.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open run history: %w", err)
	}

	return s, nil
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		NewRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
