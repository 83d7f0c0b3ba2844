// SPDX-License-Identifier: MIT
// Package: lvseq/sequences
//
// recurrences.go - descriptors for the recurrence family and their
// negative-index variants.

package sequences

import (
	"math/big"

	"github.com/katalvlaran/lvseq/recurrence"
	"github.com/katalvlaran/lvseq/validate"
)

// Descriptors are built per call: Initial slices are handed to the engine and
// must never be shared between callers.

func fibonacci() recurrence.Descriptor {
	return recurrence.Linear(recurrence.Ints(0, 1), 1, 1)
}

func tribonacci() recurrence.Descriptor {
	return recurrence.Descriptor{Initial: recurrence.Ints(0, 0, 1), Arity: 3, Combine: recurrence.Sum()}
}

func lucas() recurrence.Descriptor {
	return recurrence.Linear(recurrence.Ints(2, 1), 1, 1)
}

func sylvester() recurrence.Descriptor {
	return recurrence.Descriptor{
		Initial: recurrence.Ints(2),
		Arity:   1,
		Combine: recurrence.Func(func(w []*big.Int) *big.Int {
			// s² - s + 1
			s := w[0]
			next := new(big.Int).Mul(s, s)
			next.Sub(next, s)
			return next.Add(next, big.NewInt(1))
		}),
	}
}

// runAlternating computes the forward sequence and flips signs per exponent.
func runAlternating(method string, d recurrence.Descriptor, n int, exponent func(int) int) ([]*big.Int, error) {
	if _, err := validate.CountFor(method, n); err != nil {
		return nil, err
	}
	terms, err := recurrence.Run(d, n)
	if err != nil {
		return nil, err
	}

	return recurrence.Alternate(terms, exponent), nil
}

func runForward(method string, d recurrence.Descriptor, n int) ([]*big.Int, error) {
	if _, err := validate.CountFor(method, n); err != nil {
		return nil, err
	}

	return recurrence.Run(d, n)
}

// Fibonacci returns 0, 1, 1, 2, 3, 5, … (A000045).
func Fibonacci(n int, _ ...Option) ([]*big.Int, error) {
	return runForward("Fibonacci", fibonacci(), n)
}

// NegaFibonacci returns F(0), F(-1), F(-2), … = 0, 1, -1, 2, -3, 5, …
func NegaFibonacci(n int, _ ...Option) ([]*big.Int, error) {
	return runAlternating("NegaFibonacci", fibonacci(), n, recurrence.EvenNegative)
}

// Tribonacci returns 0, 0, 1, 1, 2, 4, 7, … (A000073).
func Tribonacci(n int, _ ...Option) ([]*big.Int, error) {
	return runForward("Tribonacci", tribonacci(), n)
}

// NegaTribonacci returns (-1)^(i+1)·T(i): 0, 0, -1, 1, -2, 4, -7, …
func NegaTribonacci(n int, _ ...Option) ([]*big.Int, error) {
	return runAlternating("NegaTribonacci", tribonacci(), n, recurrence.EvenNegative)
}

// Lucas returns 2, 1, 3, 4, 7, 11, … (A000032).
func Lucas(n int, _ ...Option) ([]*big.Int, error) {
	return runForward("Lucas", lucas(), n)
}

// NegaLucas returns L(0), L(-1), L(-2), … = 2, -1, 3, -4, 7, …
func NegaLucas(n int, _ ...Option) ([]*big.Int, error) {
	return runAlternating("NegaLucas", lucas(), n, recurrence.OddNegative)
}

// Supergolden returns Narayana's cows sequence a(n) = a(n-1) + a(n-3)
// seeded 1, 1, 1 (A000930).
func Supergolden(n int, _ ...Option) ([]*big.Int, error) {
	return runForward("Supergolden", recurrence.Linear(recurrence.Ints(1, 1, 1), 1, 0, 1), n)
}

// Padovan returns a(n) = a(n-2) + a(n-3) seeded 1, 1, 1 (A134816).
func Padovan(n int, _ ...Option) ([]*big.Int, error) {
	return runForward("Padovan", recurrence.Linear(recurrence.Ints(1, 1, 1), 1, 1, 0), n)
}

// Perrin returns a(n) = a(n-2) + a(n-3) seeded 3, 0, 2 (A001608).
func Perrin(n int, _ ...Option) ([]*big.Int, error) {
	return runForward("Perrin", recurrence.Linear(recurrence.Ints(3, 0, 2), 1, 1, 0), n)
}

// Pell returns a(n) = 2a(n-1) + a(n-2) seeded 0, 1 (A000129).
func Pell(n int, _ ...Option) ([]*big.Int, error) {
	return runForward("Pell", recurrence.Linear(recurrence.Ints(0, 1), 1, 2), n)
}

// Jacobsthal returns a(n) = a(n-1) + 2a(n-2) seeded 0, 1 (A001045).
func Jacobsthal(n int, _ ...Option) ([]*big.Int, error) {
	return runForward("Jacobsthal", recurrence.Linear(recurrence.Ints(0, 1), 2, 1), n)
}

// Sylvester returns a(n) = a(n-1)² - a(n-1) + 1 seeded 2 (A000058).
func Sylvester(n int, _ ...Option) ([]*big.Int, error) {
	return runForward("Sylvester", sylvester(), n)
}
