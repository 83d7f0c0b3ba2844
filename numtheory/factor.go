// SPDX-License-Identifier: MIT
// Package: lvseq/numtheory
//
// factor.go - prime factorization by repeated smallest-factor division.

package numtheory

import "github.com/katalvlaran/lvseq/validate"

// Factorize returns the prime factors of x in ascending order, with
// multiplicity. Factorize(1) is empty. The product of the result equals x.
//
// The candidate divisor only ever increases, so a divisor that still divides
// the reduced x is prime without re-testing it.
// Complexity: O(√x) time, O(log x) space.
func Factorize(x int64) ([]int64, error) {
	if _, err := validate.Operand(MethodFactorize, x); err != nil {
		return nil, err
	}

	factors := make([]int64, 0, 8)
	for d := int64(2); x > 1; {
		if d > x/d {
			// remaining cofactor has no divisor ≤ √x: it is prime
			factors = append(factors, x)
			break
		}
		if x%d == 0 {
			factors = append(factors, d)
			x /= d
			continue
		}
		if d == 2 {
			d = 3
		} else {
			d += 2
		}
	}

	return factors, nil
}

// DistinctPrimeFactors returns the set of primes dividing x, ascending.
// DistinctPrimeFactors(1) is empty.
func DistinctPrimeFactors(x int64) ([]int64, error) {
	if _, err := validate.Operand(MethodDistinctPrimeFactors, x); err != nil {
		return nil, err
	}
	factors, err := Factorize(x)
	if err != nil {
		return nil, err
	}

	distinct := make([]int64, 0, len(factors))
	for _, p := range factors {
		if n := len(distinct); n == 0 || distinct[n-1] != p {
			distinct = append(distinct, p)
		}
	}

	return distinct, nil
}

// Omega returns the number of prime factors of x counted with multiplicity,
// and the number of distinct ones, in a single factorization.
func Omega(x int64) (total, distinct int, err error) {
	factors, err := Factorize(x)
	if err != nil {
		return 0, 0, err
	}
	for i, p := range factors {
		if i == 0 || p != factors[i-1] {
			distinct++
		}
	}

	return len(factors), distinct, nil
}
