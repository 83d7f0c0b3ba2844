// SPDX-License-Identifier: MIT
// Package: lvseq/numtheory
//
// primes.go - primality and smallest prime factor by trial division.

package numtheory

import (
	"math/big"
	"time"

	"github.com/katalvlaran/lvseq/validate"
)

// Method names used as error prefixes.
const (
	MethodSmallestPrimeFactor    = "SmallestPrimeFactor"
	MethodSmallestPrimeFactorBig = "SmallestPrimeFactorBig"
	MethodFactorize              = "Factorize"
	MethodDistinctPrimeFactors   = "DistinctPrimeFactors"
	MethodDivisors               = "Divisors"
	MethodDivisorSum             = "DivisorSum"
	MethodProperDivisorSum       = "ProperDivisorSum"
	MethodDivisorCount           = "DivisorCount"

	MethodSmallestPrimeFactorBigWithin = "SmallestPrimeFactorBigWithin"
)

// millerRabinRounds is passed to big.Int.ProbablyPrime. Go applies a
// Baillie–PSW test in addition to these rounds, which is exact below 2⁶⁴.
const millerRabinRounds = 20

// IsPrime reports whether x is prime.
// x < 2 is not prime; 2 and 3 are. Larger x are tested by trial division
// with every candidate up to ⌊√x⌋ (2, then odd numbers).
// Complexity: O(√x) time, O(1) space.
func IsPrime(x int64) bool {
	if x < 2 {
		return false
	}
	if x < 4 {
		return true
	}
	if x%2 == 0 {
		return false
	}
	// i <= x/i avoids overflowing i*i near MaxInt64.
	for i := int64(3); i <= x/i; i += 2 {
		if x%i == 0 {
			return false
		}
	}

	return true
}

// SmallestPrimeFactor returns the least prime dividing x, or x itself when x
// is prime. SmallestPrimeFactor(1) is 1, since 1 has no prime factor.
// The least divisor ≥ 2 of any x is necessarily prime, so ascending trial
// division needs no separate primality filter.
// Complexity: O(√x).
func SmallestPrimeFactor(x int64) (int64, error) {
	if _, err := validate.Operand(MethodSmallestPrimeFactor, x); err != nil {
		return 0, err
	}

	return smallestFactor(x), nil
}

// smallestFactor assumes x ≥ 1.
func smallestFactor(x int64) int64 {
	p, _, _ := smallestFactorWithin(x, FactorBudget{})

	return p
}

// smallestFactorWithin is smallestFactor under b. ok is false when the
// budget ran out before a factor was found.
func smallestFactorWithin(x int64, b FactorBudget) (p, used int64, ok bool) {
	if x%2 == 0 && x > 1 {
		return 2, 0, true
	}
	for i := int64(3); i <= x/i; i += 2 {
		if b.spent(used) {
			return 0, used, false
		}
		used++
		if x%i == 0 {
			return i, used, true
		}
	}

	return x, used, true
}

// FactorBudget bounds a trial-division search. Zero fields leave that bound
// off; the zero FactorBudget is unlimited.
type FactorBudget struct {
	MaxDivisions int64     // odd trial divisors examined
	Deadline     time.Time // wall-clock limit
}

// spent reports whether another trial division would exceed b.
func (b FactorBudget) spent(used int64) bool {
	if b.MaxDivisions > 0 && used >= b.MaxDivisions {
		return true
	}

	return !b.Deadline.IsZero() && time.Now().After(b.Deadline)
}

// SmallestPrimeFactorBig is SmallestPrimeFactor for arbitrary-precision x.
// Values that fit in an int64 take the native path. Larger values are first
// checked with ProbablyPrime (exact for the prime case on the sizes this
// library can reach in practice) and then trial-divided.
// The input is never modified; the result is a fresh *big.Int.
func SmallestPrimeFactorBig(x *big.Int) (*big.Int, error) {
	p, _, err := smallestFactorBig(MethodSmallestPrimeFactorBig, x, FactorBudget{})

	return p, err
}

// SmallestPrimeFactorBigWithin is SmallestPrimeFactorBig with a bounded
// search. It also returns the number of trial divisions performed, so
// callers can spread one budget over several searches.
//
// Errors:
//   - validate.ErrInvalidArgument - x is nil or < 1.
//   - validate.ErrUnbounded       - b ran out before a factor was found.
func SmallestPrimeFactorBigWithin(x *big.Int, b FactorBudget) (*big.Int, int64, error) {
	return smallestFactorBig(MethodSmallestPrimeFactorBigWithin, x, b)
}

func smallestFactorBig(method string, x *big.Int, b FactorBudget) (*big.Int, int64, error) {
	if x == nil || x.Sign() < 1 {
		return nil, 0, validate.Errorf(method, validate.ErrInvalidArgument,
			"operand must be ≥ %d, got %v", validate.MinOperand, x)
	}
	if x.IsInt64() {
		p, used, ok := smallestFactorWithin(x.Int64(), b)
		if !ok {
			return nil, used, validate.Errorf(method, validate.ErrUnbounded,
				"no factor of %v after %d divisions", x, used)
		}
		return big.NewInt(p), used, nil
	}
	if x.ProbablyPrime(millerRabinRounds) {
		return new(big.Int).Set(x), 0, nil
	}
	if x.Bit(0) == 0 {
		return big.NewInt(2), 0, nil
	}

	var (
		used int64
		i    = big.NewInt(3)
		two  = big.NewInt(2)
		sq   = new(big.Int)
		quot = new(big.Int)
		rem  = new(big.Int)
	)
	for sq.Mul(i, i).Cmp(x) <= 0 {
		if b.spent(used) {
			return nil, used, validate.Errorf(method, validate.ErrUnbounded,
				"no factor below %v after %d divisions", i, used)
		}
		used++
		if quot.QuoRem(x, i, rem); rem.Sign() == 0 {
			return new(big.Int).Set(i), used, nil
		}
		i.Add(i, two)
	}

	return new(big.Int).Set(x), used, nil
}
