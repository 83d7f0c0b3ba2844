// SPDX-License-Identifier: MIT
// Package: lvseq/internal/render

package render

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Palette shared by the text views.
var (
	colorTitle = lipgloss.Color("#7C3AED")
	colorMeta  = lipgloss.Color("#6B7280")
	colorIndex = lipgloss.Color("#9CA3AF")
	colorName  = lipgloss.Color("#3B82F6")
	colorKind  = lipgloss.Color("#10B981")
)

// styles binds the palette to the color profile of one writer, so output to
// a pipe or a buffer carries no escape sequences.
type styles struct {
	title, meta, index, name, kind lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorTitle),
		meta:  r.NewStyle().Foreground(colorMeta).Italic(true),
		index: r.NewStyle().Foreground(colorIndex),
		name:  r.NewStyle().Foreground(colorName).Bold(true),
		kind:  r.NewStyle().Foreground(colorKind),
	}
}

// writeText prints a header line followed by one indexed term per line.
// Terms within int64 range are digit-grouped for the configured locale.
func writeText(w io.Writer, s Sequence, cfg renderConfig) error {
	st := newStyles(w)
	p := message.NewPrinter(language.Make(cfg.locale))

	meta := " · " + s.Kind
	if s.OEIS != "" {
		meta += " · " + s.OEIS
	}
	if s.ID != "" {
		meta += " · run " + s.ID
	}
	if _, err := fmt.Fprintln(w, st.title.Render(s.Name)+st.meta.Render(meta)); err != nil {
		return err
	}

	width := len(strconv.Itoa(len(s.Terms)))
	for i, t := range s.Terms {
		idx := st.index.Render(fmt.Sprintf("%*d", width, i+1))
		if _, err := fmt.Fprintf(w, "%s  %s\n", idx, group(p, t)); err != nil {
			return err
		}
	}

	return nil
}

func group(p *message.Printer, t *big.Int) string {
	if t.IsInt64() {
		return p.Sprintf("%d", t.Int64())
	}

	return t.String()
}
