// SPDX-License-Identifier: MIT
// Package: lvseq/selfref
//
// looksay.go - the describe-then-encode sequence.

package selfref

import (
	"math/big"

	"github.com/katalvlaran/lvseq/digits"
	"github.com/katalvlaran/lvseq/validate"
)

// LookSay returns the first n terms of the look-and-say sequence starting at
// 1: each term reads the previous one aloud, run by run (count then digit).
//
//	1, 11, 21, 1211, 111221, 312211, …
//
// The working state is the previous term's digit symbols; terms grow by
// roughly 30% per step, so they are returned as *big.Int.
func LookSay(n int) ([]*big.Int, error) {
	if _, err := validate.CountFor(MethodLookSay, n); err != nil {
		return nil, err
	}

	terms := make([]*big.Int, 0, n)
	cur := []byte{1}
	for {
		terms = append(terms, digits.Value(cur, digits.Decimal))
		if len(terms) == n {
			return terms, nil
		}
		cur = digits.Describe(cur)
	}
}
