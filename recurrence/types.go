// SPDX-License-Identifier: MIT
// Package: lvseq/recurrence
//
// types.go - Descriptor and combination rules.

package recurrence

import (
	"math/big"

	"github.com/katalvlaran/lvseq/validate"
)

// MethodRun is the error prefix used by Run.
const MethodRun = "Run"

// CombineFunc produces the next term from the trailing window of length
// Arity, oldest first. It must not modify the window and must return a fresh
// *big.Int.
type CombineFunc func(window []*big.Int) *big.Int

// Descriptor fully determines a recurrence sequence.
type Descriptor struct {
	Initial []*big.Int  // fixed seed terms, emitted verbatim
	Arity   int         // trailing terms fed to Combine; 1 ≤ Arity ≤ len(Initial)
	Combine CombineFunc // combination rule
}

// Validate checks the descriptor invariants.
func (d Descriptor) Validate() error {
	if d.Arity < 1 || d.Arity > len(d.Initial) {
		return validate.Errorf(MethodRun, validate.ErrInvalidArgument,
			"arity must be in [1,%d], got %d", len(d.Initial), d.Arity)
	}
	if d.Combine == nil {
		return validate.Errorf(MethodRun, validate.ErrInvalidArgument, "combine function is nil")
	}
	for i, v := range d.Initial {
		if v == nil {
			return validate.Errorf(MethodRun, validate.ErrInvalidArgument, "initial term %d is nil", i)
		}
	}

	return nil
}

// Ints converts int64 literals into fresh *big.Int values.
func Ints(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}

	return out
}

// Sum returns a rule adding every term of the window.
func Sum() CombineFunc {
	return func(window []*big.Int) *big.Int {
		acc := new(big.Int)
		for _, v := range window {
			acc.Add(acc, v)
		}

		return acc
	}
}

// Weighted returns a rule computing Σ coeffs[i]·window[i], oldest first.
// The caller guarantees len(coeffs) == Arity; Linear does so by construction.
func Weighted(coeffs ...int64) CombineFunc {
	weights := Ints(coeffs...)
	return func(window []*big.Int) *big.Int {
		acc := new(big.Int)
		term := new(big.Int)
		for i, v := range window {
			if weights[i].Sign() == 0 {
				continue
			}
			acc.Add(acc, term.Mul(weights[i], v))
		}

		return acc
	}
}

// Func adapts an arbitrary rule. f receives the window, oldest first, and
// must return a fresh *big.Int without modifying the window.
func Func(f func(window []*big.Int) *big.Int) CombineFunc {
	return CombineFunc(f)
}

// Linear builds a fixed-order linear recurrence
// a(n) = coeffs[0]·a(n-k) + … + coeffs[k-1]·a(n-1), with k = len(coeffs).
func Linear(initial []*big.Int, coeffs ...int64) Descriptor {
	return Descriptor{Initial: initial, Arity: len(coeffs), Combine: Weighted(coeffs...)}
}
