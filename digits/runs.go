// SPDX-License-Identifier: MIT
// Package: lvseq/digits
//
// runs.go - the digit-run encoder.

package digits

// Run is a maximal block of Length equal consecutive symbols.
type Run struct {
	Symbol byte
	Length int
}

// Runs encodes symbols as an ordered list of (symbol, run-length) pairs.
// Runs(nil) is empty.
// Complexity: O(len(symbols)).
func Runs(symbols []byte) []Run {
	runs := make([]Run, 0, len(symbols))
	for _, s := range symbols {
		if n := len(runs); n > 0 && runs[n-1].Symbol == s {
			runs[n-1].Length++
			continue
		}
		runs = append(runs, Run{Symbol: s, Length: 1})
	}

	return runs
}

// Describe returns the look-and-say description of symbols: for each run,
// the decimal digits of its length followed by the symbol.
//
//	Describe([1 2 1 1]) → [1 1 1 2 2 1]
func Describe(symbols []byte) []byte {
	out := make([]byte, 0, 2*len(symbols))
	for _, r := range Runs(symbols) {
		out = append(out, Of(int64(r.Length), Decimal)...)
		out = append(out, r.Symbol)
	}

	return out
}
