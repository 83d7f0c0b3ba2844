// SPDX-License-Identifier: MIT
// Package: lvseq/internal/cli

package cli

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeName maps user input onto registry keys: NFKC-folded, lower
// case, with spaces and dashes turned into underscores ("Look-Say" →
// "look_say").
func normalizeName(s string) string {
	s = strings.ToLower(norm.NFKC.String(strings.TrimSpace(s)))

	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return r
	}, s)
}
