// SPDX-License-Identifier: MIT
// Package: lvseq/internal/render

package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvseq/sequences"
)

// Catalog prints one aligned row per registry entry: name, kind, OEIS
// number and summary.
func Catalog(w io.Writer, entries []sequences.Entry) error {
	st := newStyles(w)

	nameWidth, kindWidth := 0, 0
	for _, e := range entries {
		nameWidth = max(nameWidth, len(e.Name))
		kindWidth = max(kindWidth, len(e.Kind.String()))
	}

	for _, e := range entries {
		oeis := e.OEIS
		if oeis == "" {
			oeis = "-"
		}
		line := st.name.Width(nameWidth+2).Render(e.Name) +
			st.kind.Width(kindWidth+2).Render(e.Kind.String()) +
			st.meta.Width(9).Render(oeis) +
			e.Summary
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
