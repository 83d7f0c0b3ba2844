// SPDX-License-Identifier: MIT
// Package: lvseq/internal/cli

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseq/ordinal"
	"github.com/katalvlaran/lvseq/validate"
)

func newOrdinalCmd(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ordinal <x>",
		Short: "Spell out an English ordinal (or cardinal) number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", validate.ErrInvalidArgument, args[0])
			}
			sep, _ := cmd.Flags().GetString("separator")

			name := ordinal.Name
			if cardinal, _ := cmd.Flags().GetBool("cardinal"); cardinal {
				name = ordinal.Cardinal
			}
			words, err := name(x, ordinal.WithSeparator(sep))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), words)

			return err
		},
	}
	cmd.Flags().Bool("cardinal", false, "print the cardinal form")
	cmd.Flags().String("separator", " ", "word separator")

	return cmd
}
