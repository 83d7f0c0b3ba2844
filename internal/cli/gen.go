// SPDX-License-Identifier: MIT
// Package: lvseq/internal/cli

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseq/internal/config"
	"github.com/katalvlaran/lvseq/internal/render"
	"github.com/katalvlaran/lvseq/internal/store"
	"github.com/katalvlaran/lvseq/sequences"
	"github.com/katalvlaran/lvseq/validate"
)

func newGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <name> <n>",
		Short: "Print the first n terms of a sequence",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runGen,
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return sequences.Names(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	cmd.Flags().StringP("format", "f", "", "output format: text, json, yaml or toml")
	cmd.Flags().Int64("max-steps", 0, "candidate budget for scanning sequences (0 = none)")
	cmd.Flags().Duration("timeout", 0, "time budget for scanning sequences (0 = none)")
	cmd.Flags().Bool("save", false, "save the run to the history")
	cmd.Flags().String("locale", "", "locale for digit grouping in text output")

	return cmd
}

// effective settings for one gen call: flags override the config.
type genSettings struct {
	format   render.Format
	maxSteps int64
	timeout  time.Duration
	locale   string
	save     bool
}

func (a *app) genSettings(cmd *cobra.Command) (genSettings, error) {
	s := genSettings{
		maxSteps: a.cfg.MaxSteps,
		timeout:  a.cfg.Timeout,
		locale:   a.cfg.Locale,
	}
	format := a.cfg.Format

	flags := cmd.Flags()
	if flags.Changed("format") {
		format, _ = flags.GetString("format")
	}
	if flags.Changed("max-steps") {
		s.maxSteps, _ = flags.GetInt64("max-steps")
	}
	if flags.Changed("timeout") {
		s.timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("locale") {
		s.locale, _ = flags.GetString("locale")
	}
	s.save, _ = flags.GetBool("save")

	f, err := render.ParseFormat(format)
	if err != nil {
		return genSettings{}, err
	}
	s.format = f
	if s.maxSteps < 0 || s.timeout < 0 {
		return genSettings{}, fmt.Errorf("%w: budgets must be ≥ 0", validate.ErrInvalidArgument)
	}
	if !config.ValidLocale(s.locale) {
		return genSettings{}, fmt.Errorf("%w: locale %q is not a BCP 47 tag", validate.ErrInvalidArgument, s.locale)
	}

	return s, nil
}

func (a *app) runGen(cmd *cobra.Command, args []string) error {
	settings, err := a.genSettings(cmd)
	if err != nil {
		return err
	}

	entry, ok := sequences.Lookup(normalizeName(args[0]))
	if !ok {
		return fmt.Errorf("%w: %q (see `lvseq list`)", sequences.ErrUnknownSequence, args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: n must be an integer, got %q", validate.ErrInvalidArgument, args[1])
	}

	opts := []sequences.Option{sequences.WithLogger(a.logger)}
	if settings.maxSteps > 0 {
		opts = append(opts, sequences.WithMaxSteps(settings.maxSteps))
	}
	if settings.timeout > 0 {
		opts = append(opts, sequences.WithTimeout(settings.timeout))
	}

	start := time.Now()
	terms, err := sequences.Generate(entry.Name, n, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	seq := render.Sequence{Name: entry.Name, Kind: entry.Kind.String(), OEIS: entry.OEIS, Terms: terms}
	if settings.save {
		id, err := a.save(cmd, store.Run{
			Name:     entry.Name,
			Count:    n,
			Terms:    terms,
			MaxSteps: settings.maxSteps,
			Timeout:  settings.timeout,
			Elapsed:  elapsed,
		})
		if err != nil {
			return err
		}
		seq.ID = id
	}

	return render.Write(cmd.OutOrStdout(), settings.format, seq, render.WithLocale(settings.locale))
}

func (a *app) save(cmd *cobra.Command, r store.Run) (string, error) {
	s, err := a.openStore()
	if err != nil {
		return "", err
	}
	defer s.Close()

	saved, err := s.Save(cmd.Context(), r)
	if err != nil {
		return "", err
	}
	a.logger.Info("saved run", "id", saved.ID, "name", saved.Name, "n", saved.Count)

	return saved.ID, nil
}
