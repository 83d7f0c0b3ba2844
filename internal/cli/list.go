// SPDX-License-Identifier: MIT
// Package: lvseq/internal/cli

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseq/internal/render"
	"github.com/katalvlaran/lvseq/sequences"
	"github.com/katalvlaran/lvseq/validate"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available sequences",
		Args:  cobra.NoArgs,
		RunE:  a.runList,
	}
	cmd.Flags().String("kind", "", "only show one kind: closed-form, recurrence, scanning or self-referential")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, _ []string) error {
	entries := sequences.Entries()

	if kind, _ := cmd.Flags().GetString("kind"); kind != "" {
		k, ok := sequences.ParseKind(kind)
		if !ok {
			return fmt.Errorf("%w: unknown kind %q", validate.ErrInvalidArgument, kind)
		}
		filtered := entries[:0]
		for _, e := range entries {
			if e.Kind == k {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	return render.Catalog(cmd.OutOrStdout(), entries)
}
