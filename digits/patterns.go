// SPDX-License-Identifier: MIT
// Package: lvseq/digits
//
// patterns.go - digit-pattern tests used by scanning predicates.

package digits

import "slices"

// MinUndulatingLen is the shortest digit string considered undulating.
// Two-digit strings ABAB... are trivially alternating and are excluded.
const MinUndulatingLen = 3

// IsPalindrome reports whether symbols read the same reversed.
func IsPalindrome(symbols []byte) bool {
	for i, j := 0, len(symbols)-1; i < j; i, j = i+1, j-1 {
		if symbols[i] != symbols[j] {
			return false
		}
	}

	return true
}

// IsUndulating reports whether symbols have the form ABAB… with A ≠ B:
// even positions all equal, odd positions all equal, and the two phases
// differ. Requires at least MinUndulatingLen symbols.
func IsUndulating(symbols []byte) bool {
	if len(symbols) < MinUndulatingLen || symbols[0] == symbols[1] {
		return false
	}
	for i := 2; i < len(symbols); i++ {
		if symbols[i] != symbols[i-2] {
			return false
		}
	}

	return true
}

// Rotations returns every cyclic rotation of symbols, starting with symbols
// itself and moving the last symbol to the front each step. Each rotation is
// a fresh slice.
func Rotations(symbols []byte) [][]byte {
	out := make([][]byte, 0, len(symbols))
	cur := slices.Clone(symbols)
	for range symbols {
		out = append(out, cur)
		next := make([]byte, 0, len(cur))
		next = append(next, cur[len(cur)-1])
		next = append(next, cur[:len(cur)-1]...)
		cur = next
	}

	return out
}

// HasOddRun reports whether symbols contain a maximal run of sym whose
// length is odd.
func HasOddRun(symbols []byte, sym byte) bool {
	for _, r := range Runs(symbols) {
		if r.Symbol == sym && r.Length%2 == 1 {
			return true
		}
	}

	return false
}
