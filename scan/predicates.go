// SPDX-License-Identifier: MIT
// Package: lvseq/scan
//
// predicates.go - the predicates behind the scanning sequences.
//
// All of them except NewCircularPrime are stateless package functions; the
// circular-prime predicate carries per-call state and must be created fresh
// for every Scan.

package scan

import (
	"github.com/katalvlaran/lvseq/digits"
	"github.com/katalvlaran/lvseq/numtheory"
)

// Prime accepts primes.
func Prime(c int64, _ []int64) bool { return numtheory.IsPrime(c) }

// Composite accepts integers > 1 that are not prime.
func Composite(c int64, _ []int64) bool { return c > 1 && !numtheory.IsPrime(c) }

// Palindrome accepts non-negative integers whose decimal digits read the
// same reversed.
func Palindrome(c int64, _ []int64) bool {
	return c >= 0 && digits.IsPalindrome(digits.DecimalOf(c))
}

// Arithmetic accepts positive integers whose divisors have an integer mean,
// i.e. σ(c) is divisible by the divisor count.
func Arithmetic(c int64, _ []int64) bool {
	if c < 1 {
		return false
	}
	sum, err := numtheory.DivisorSum(c)
	if err != nil {
		return false
	}
	count, _ := numtheory.DivisorCount(c)

	return sum%count == 0
}

// Perfect accepts positive integers equal to the sum of their proper divisors.
func Perfect(c int64, _ []int64) bool {
	if c < 1 {
		return false
	}
	proper, err := numtheory.ProperDivisorSum(c)

	return err == nil && proper == c
}

// Undulating accepts non-negative integers of the form ABAB… (A ≠ B) with
// at least three digits.
func Undulating(c int64, _ []int64) bool {
	return c >= 0 && digits.IsUndulating(digits.DecimalOf(c))
}

// SophieGermain accepts primes p for which 2p+1 is also prime.
func SophieGermain(c int64, _ []int64) bool {
	return numtheory.IsPrime(c) && numtheory.IsPrime(2*c+1)
}

// PrimePower accepts p^k for a prime p and k ≥ 1.
func PrimePower(c int64, _ []int64) bool {
	if c < 2 {
		return false
	}
	_, distinct, _ := numtheory.Omega(c)

	return distinct == 1
}

// Semiprime accepts products of exactly two primes, not necessarily distinct.
func Semiprime(c int64, _ []int64) bool {
	if c < 4 {
		return false
	}
	total, _, _ := numtheory.Omega(c)

	return total == 2
}

// Sphenic accepts products of exactly three distinct primes.
func Sphenic(c int64, _ []int64) bool {
	if c < 30 {
		return false
	}
	total, distinct, _ := numtheory.Omega(c)

	return total == 3 && distinct == 3
}

// NewCircularPrime returns a predicate accepting primes all of whose decimal
// rotations are prime, skipping any candidate that is a rotation of an
// accepted term.
//
// Rotation classes are tracked by their canonical form, the numeric minimum
// over all rotations. The set is derived from accepted: it is extended as the
// history grows and rebuilt when a call presents a different history, so the
// answer depends only on (candidate, accepted) and the predicate may be
// reused across scans. Rotation primality is memoized in a PrimeTable owned
// by the returned predicate. Not safe for concurrent use.
func NewCircularPrime() Predicate {
	table := numtheory.NewPrimeTable()
	classes := make(map[int64]struct{})
	var seen []int64 // the accepted prefix reflected in classes

	return func(c int64, accepted []int64) bool {
		if len(accepted) < len(seen) || (len(seen) > 0 && accepted[len(seen)-1] != seen[len(seen)-1]) {
			clear(classes)
			seen = seen[:0]
		}
		for _, v := range accepted[len(seen):] {
			classes[canonicalRotation(v)] = struct{}{}
			seen = append(seen, v)
		}

		if !table.IsPrime(c) {
			return false
		}
		for _, rot := range digits.Rotations(digits.DecimalOf(c)) {
			if !table.IsPrime(digits.Int64Value(rot, digits.Decimal)) {
				return false
			}
		}
		_, dup := classes[canonicalRotation(c)]

		return !dup
	}
}

// canonicalRotation is the smallest value among the decimal rotations of x.
func canonicalRotation(x int64) int64 {
	canonical := x
	for _, rot := range digits.Rotations(digits.DecimalOf(x)) {
		if v := digits.Int64Value(rot, digits.Decimal); v < canonical {
			canonical = v
		}
	}

	return canonical
}
