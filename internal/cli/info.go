// SPDX-License-Identifier: MIT
// Package: lvseq/internal/cli

package cli

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseq/internal/render"
	"github.com/katalvlaran/lvseq/sequences"
	"github.com/katalvlaran/lvseq/validate"
)

// Preview limits for `lvseq info`. Sequences whose terms are too sparse to
// reach previewTerms within the budget get a shorter preview.
const (
	previewTerms   = 10
	previewTimeout = 250 * time.Millisecond
)

func newInfoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Describe a sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := sequences.Lookup(normalizeName(args[0]))
			if !ok {
				return fmt.Errorf("%w: %q (see `lvseq list`)", sequences.ErrUnknownSequence, args[0])
			}

			md := render.Markdown(e, a.preview(e))
			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				return err
			}
			out, err := r.Render(md)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}
	cmd.Flags().Bool("raw", false, "print the markdown source")

	return cmd
}

// preview generates up to previewTerms terms, halving the count while the
// budget runs out.
func (a *app) preview(e sequences.Entry) []*big.Int {
	timeout := a.cfg.Timeout
	if timeout == 0 {
		timeout = previewTimeout
	}
	opts := []sequences.Option{sequences.WithLogger(a.logger), sequences.WithTimeout(timeout)}
	if a.cfg.MaxSteps > 0 {
		opts = append(opts, sequences.WithMaxSteps(a.cfg.MaxSteps))
	}

	for n := previewTerms; n > 0; n /= 2 {
		terms, err := e.Generate(n, opts...)
		if err == nil {
			return terms
		}
		if !errors.Is(err, validate.ErrUnbounded) {
			a.logger.Warn("no preview", "name", e.Name, "err", err)
			return nil
		}
		a.logger.Debug("preview budget exhausted", "name", e.Name, "n", n)
	}

	return nil
}
