// SPDX-License-Identifier: MIT
// Package: lvseq/internal/render

package render

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvseq/sequences"
)

// OEISURL is the base of sequence links.
const OEISURL = "https://oeis.org/"

// Markdown describes one registry entry with a preview of its first terms.
func Markdown(e sequences.Entry, preview []*big.Int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	fmt.Fprintf(&b, "*%s*", e.Kind)
	if e.OEIS != "" {
		fmt.Fprintf(&b, " · [%s](%s%s)", e.OEIS, OEISURL, e.OEIS)
	}
	fmt.Fprintf(&b, "\n\n%s\n", e.Summary)

	if len(preview) > 0 {
		terms := make([]string, len(preview))
		for i, t := range preview {
			terms[i] = t.String()
		}
		fmt.Fprintf(&b, "\n```\n%s, …\n```\n", strings.Join(terms, ", "))
	}

	return b.String()
}
