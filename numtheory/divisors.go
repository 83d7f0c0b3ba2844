// SPDX-License-Identifier: MIT
// Package: lvseq/numtheory
//
// divisors.go - divisor enumeration and divisor sums.

package numtheory

import (
	"math"
	"math/big"
	"math/bits"
	"slices"

	"github.com/katalvlaran/lvseq/validate"
)

// Divisors returns every positive divisor of x in ascending order.
// Divisors are collected in pairs (i, x/i) for i ≤ √x.
// Complexity: O(√x) time.
func Divisors(x int64) ([]int64, error) {
	if _, err := validate.Operand(MethodDivisors, x); err != nil {
		return nil, err
	}

	low := make([]int64, 0, 16)
	high := make([]int64, 0, 16)
	for i := int64(1); i <= x/i; i++ {
		if x%i != 0 {
			continue
		}
		low = append(low, i)
		if j := x / i; j != i {
			high = append(high, j)
		}
	}
	slices.Reverse(high)

	return append(low, high...), nil
}

// DivisorCount returns the number of positive divisors of x.
func DivisorCount(x int64) (int64, error) {
	if _, err := validate.Operand(MethodDivisorCount, x); err != nil {
		return 0, err
	}

	var count int64
	for i := int64(1); i <= x/i; i++ {
		if x%i != 0 {
			continue
		}
		count++
		if x/i != i {
			count++
		}
	}

	return count, nil
}

// DivisorSum returns σ(x), the sum of all positive divisors of x.
// DivisorSum(6) == 12. σ(x) may exceed int64 once x > MaxInt64/2 (σ(5·2⁶⁰)
// ≈ 1.38e19); such x yield ErrInvalidArgument.
// Complexity: that of Factorize.
func DivisorSum(x int64) (int64, error) {
	if _, err := validate.Operand(MethodDivisorSum, x); err != nil {
		return 0, err
	}
	sigma, ok := divisorSum(x)
	if !ok {
		return 0, validate.Errorf(MethodDivisorSum, validate.ErrInvalidArgument,
			"σ(%d) exceeds int64", x)
	}

	return sigma, nil
}

// ProperDivisorSum returns σ(x) − x, the sum of the divisors of x below x.
// ProperDivisorSum(1) == 0. The result is exact whenever it fits in int64,
// even if σ(x) itself does not.
func ProperDivisorSum(x int64) (int64, error) {
	if _, err := validate.Operand(MethodProperDivisorSum, x); err != nil {
		return 0, err
	}
	if sigma, ok := divisorSum(x); ok {
		return sigma - x, nil
	}

	proper := divisorSumBig(x)
	proper.Sub(proper, big.NewInt(x))
	if !proper.IsInt64() {
		return 0, validate.Errorf(MethodProperDivisorSum, validate.ErrInvalidArgument,
			"σ(%d) − %d exceeds int64", x, x)
	}

	return proper.Int64(), nil
}

// divisorSum evaluates σ(x) = Π (1 + p + … + p^e) over the factorization of
// x. ok is false when the result exceeds int64. Assumes x ≥ 1.
func divisorSum(x int64) (sigma int64, ok bool) {
	factors, _ := Factorize(x)
	sigma = 1
	for i := 0; i < len(factors); {
		p := factors[i]
		term, pow := int64(1), int64(1)
		for ; i < len(factors) && factors[i] == p; i++ {
			pow *= p // pow divides x
			if term > math.MaxInt64-pow {
				return 0, false
			}
			term += pow
		}
		hi, lo := bits.Mul64(uint64(sigma), uint64(term))
		if hi != 0 || lo > math.MaxInt64 {
			return 0, false
		}
		sigma = int64(lo)
	}

	return sigma, true
}

// divisorSumBig is divisorSum without the int64 bound.
func divisorSumBig(x int64) *big.Int {
	factors, _ := Factorize(x)
	sigma := big.NewInt(1)
	term, pow := new(big.Int), new(big.Int)
	for i := 0; i < len(factors); {
		p := big.NewInt(factors[i])
		term.SetInt64(1)
		pow.SetInt64(1)
		for q := factors[i]; i < len(factors) && factors[i] == q; i++ {
			pow.Mul(pow, p)
			term.Add(term, pow)
		}
		sigma.Mul(sigma, term)
	}

	return sigma
}
