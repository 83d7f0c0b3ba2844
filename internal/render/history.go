// SPDX-License-Identifier: MIT
// Package: lvseq/internal/render

package render

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/lvseq/internal/store"
)

// History prints one row per saved run: id, name, term count, creation time
// and generation time.
func History(w io.Writer, runs []store.Run) error {
	st := newStyles(w)

	nameWidth := 0
	for _, r := range runs {
		nameWidth = max(nameWidth, len(r.Name))
	}

	for _, r := range runs {
		line := st.meta.Width(28).Render(r.ID) +
			st.name.Width(nameWidth+2).Render(r.Name) +
			st.index.Width(8).Render(fmt.Sprintf("n=%d", r.Count)) +
			r.CreatedAt.Local().Format(time.DateTime) + "  " +
			r.Elapsed.Round(time.Microsecond).String()
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
