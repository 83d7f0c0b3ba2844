// SPDX-License-Identifier: MIT
// Package: lvseq/sequences
//
// scanning.go - sequences collected by the scanning engine.
//
// Each generator pairs a predicate with its first candidate; budgets from
// WithMaxSteps/WithTimeout are forwarded to scan.Scan.

package sequences

import (
	"math/big"

	"github.com/katalvlaran/lvseq/scan"
	"github.com/katalvlaran/lvseq/validate"
)

// scanned runs pred from start and lifts the accepted candidates to *big.Int.
func scanned(method string, pred scan.Predicate, start int64, n int, opts []Option) ([]*big.Int, error) {
	if _, err := validate.CountFor(method, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	found, err := scan.Scan(pred, start, n, cfg.scanOptions()...)
	if err != nil {
		return nil, err
	}

	return lift(found), nil
}

// lift converts native terms to fresh *big.Int values.
func lift(xs []int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}

	return out
}

// Prime returns 2, 3, 5, 7, 11, … (A000040).
func Prime(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("Prime", scan.Prime, 2, n, opts)
}

// Composite returns 4, 6, 8, 9, 10, … (A002808).
func Composite(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("Composite", scan.Composite, 4, n, opts)
}

// Palindrome returns decimal palindromes 0, 1, …, 9, 11, 22, … (A002113).
func Palindrome(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("Palindrome", scan.Palindrome, 0, n, opts)
}

// Arithmetic returns numbers whose divisor mean is an integer: 1, 3, 5, 6,
// 7, 11, … (A003601).
func Arithmetic(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("Arithmetic", scan.Arithmetic, 1, n, opts)
}

// Perfect returns 6, 28, 496, 8128, … (A000396). The fifth term lies far
// beyond any practical scan; bound it with WithMaxSteps or WithTimeout.
func Perfect(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("Perfect", scan.Perfect, 1, n, opts)
}

// Undulating returns ABAB… numbers with at least three digits and A ≠ B:
// 101, 121, 131, … (A046075).
func Undulating(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("Undulating", scan.Undulating, 100, n, opts)
}

// SophieGermain returns primes p with 2p+1 also prime: 2, 3, 5, 11, … (A005384).
func SophieGermain(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("SophieGermain", scan.SophieGermain, 2, n, opts)
}

// CircularPrime returns the smallest representative of each circular prime
// rotation class: 2, 3, 5, 7, 11, 13, 17, 37, 79, 113, … (A016114).
func CircularPrime(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("CircularPrime", scan.NewCircularPrime(), 2, n, opts)
}

// PrimePowers returns p^k for prime p and k ≥ 1: 2, 3, 4, 5, 7, 8, 9, … (A246655).
func PrimePowers(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("PrimePowers", scan.PrimePower, 2, n, opts)
}

// Semiprime returns products of exactly two primes: 4, 6, 9, 10, 14, … (A001358).
func Semiprime(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("Semiprime", scan.Semiprime, 4, n, opts)
}

// Sphenic returns products of three distinct primes: 30, 42, 66, 70, … (A007304).
func Sphenic(n int, opts ...Option) ([]*big.Int, error) {
	return scanned("Sphenic", scan.Sphenic, 30, n, opts)
}
