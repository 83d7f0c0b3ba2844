// SPDX-License-Identifier: MIT
// Package: lvseq/internal/cli

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseq/internal/render"
	"github.com/katalvlaran/lvseq/sequences"
)

func newRunsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the saved run history",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no saved runs")
				return err
			}

			return render.History(cmd.OutOrStdout(), runs)
		},
	}
	list.Flags().IntP("limit", "n", 20, "maximum runs to show (0 = all)")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			format := a.cfg.Format
			if cmd.Flags().Changed("format") {
				format, _ = cmd.Flags().GetString("format")
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			seq := render.Sequence{ID: r.ID, Name: r.Name, Terms: r.Terms}
			if e, ok := sequences.Lookup(r.Name); ok {
				seq.Kind, seq.OEIS = e.Kind.String(), e.OEIS
			}

			return render.Write(cmd.OutOrStdout(), f, seq, render.WithLocale(a.cfg.Locale))
		},
	}
	show.Flags().StringP("format", "f", "", "output format: text, json, yaml or toml")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.logger.Info("deleted run", "id", args[0])

			return nil
		},
	}

	cmd.AddCommand(list, show, rm)

	return cmd
}
