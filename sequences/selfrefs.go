// SPDX-License-Identifier: MIT
// Package: lvseq/sequences

package sequences

import (
	"math/big"

	"github.com/katalvlaran/lvseq/selfref"
)

func lifted(xs []int64, err error) ([]*big.Int, error) {
	if err != nil {
		return nil, err
	}

	return lift(xs), nil
}

// VanEck returns Van Eck's sequence 0, 0, 1, 0, 2, 0, 2, 2, … (A181391).
func VanEck(n int, _ ...Option) ([]*big.Int, error) {
	return lifted(selfref.VanEck(n))
}

// Recaman returns Recamán's sequence 0, 1, 3, 6, 2, 7, … (A005132).
func Recaman(n int, _ ...Option) ([]*big.Int, error) {
	return lifted(selfref.Recaman(n))
}

// LookSay returns the look-and-say sequence 1, 11, 21, 1211, … (A005150).
func LookSay(n int, _ ...Option) ([]*big.Int, error) {
	return selfref.LookSay(n)
}

// BaumSweet returns 1 where the binary expansion of i has no odd-length
// block of zeros, 0 otherwise (A086747).
func BaumSweet(n int, _ ...Option) ([]*big.Int, error) {
	return lifted(selfref.BaumSweet(n))
}

// Aronson returns the positions of the letter 't' in "T is the first,
// fourth, …": 1, 4, 11, 16, 24, … (A005224).
func Aronson(n int, opts ...Option) ([]*big.Int, error) {
	return lifted(selfref.Aronson(n, newConfig(opts...).selfrefOptions()...))
}

// EuclidMullin returns 2, 3, 7, 43, 13, 53, 5, … where each term is the
// smallest prime factor of one plus the product of its predecessors
// (A000945).
func EuclidMullin(n int, opts ...Option) ([]*big.Int, error) {
	return selfref.EuclidMullin(n, newConfig(opts...).selfrefOptions()...)
}
