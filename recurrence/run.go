// SPDX-License-Identifier: MIT
// Package: lvseq/recurrence
//
// run.go - the recurrence engine.
//
// Contract:
//   • Run(d, n) returns exactly n terms or an error, never a partial slice.
//   • n ≤ len(d.Initial) ⇒ a copy of the initial prefix; Combine is not called.
//   • O(n·Arity) big-integer operations, O(n) terms of memory.

package recurrence

import (
	"math/big"

	"github.com/katalvlaran/lvseq/validate"
)

// Run returns the first n terms described by d.
func Run(d Descriptor, n int) ([]*big.Int, error) {
	if _, err := validate.CountFor(MethodRun, n); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	terms := make([]*big.Int, 0, n)
	for i := 0; i < len(d.Initial) && i < n; i++ {
		terms = append(terms, new(big.Int).Set(d.Initial[i]))
	}
	for len(terms) < n {
		window := terms[len(terms)-d.Arity:]
		terms = append(terms, d.Combine(window))
	}

	return terms, nil
}

// Alternate applies term[i] → (−1)^exponent(i) · term[i] and returns the
// transformed copy. The input slice is left untouched.
func Alternate(terms []*big.Int, exponent func(i int) int) []*big.Int {
	out := make([]*big.Int, len(terms))
	for i, v := range terms {
		out[i] = new(big.Int).Set(v)
		if exponent(i)%2 != 0 {
			out[i].Neg(out[i])
		}
	}

	return out
}

// EvenNegative is the exponent i+1: terms at even (0-based) indices change
// sign. Used by NegaFibonacci and NegaTribonacci.
func EvenNegative(i int) int { return i + 1 }

// OddNegative is the exponent i: terms at odd (0-based) indices change sign.
// Used by NegaLucas.
func OddNegative(i int) int { return i }
