// SPDX-License-Identifier: MIT
// Package: lvseq/validate
//
// validate.go - count and operand checks.

package validate

// MinCount is the smallest number of terms a generator may be asked for.
const MinCount = 1

// MinOperand is the smallest operand accepted by factorization and divisor
// primitives.
const MinOperand = 1

// Count returns n unchanged when n ≥ MinCount, otherwise an error wrapping
// ErrInvalidArgument. It has no side effects.
// Complexity: O(1).
func Count(n int) (int, error) {
	if n < MinCount {
		return 0, Errorf("Count", ErrInvalidArgument, "count must be ≥ %d, got %d", MinCount, n)
	}

	return n, nil
}

// CountFor is Count with the caller's method name as error prefix, so that a
// rejected request reads "Fibonacci: count must be ≥ 1, got 0".
func CountFor(method string, n int) (int, error) {
	if n < MinCount {
		return 0, Errorf(method, ErrInvalidArgument, "count must be ≥ %d, got %d", MinCount, n)
	}

	return n, nil
}

// Operand returns x unchanged when x ≥ MinOperand, otherwise an error
// wrapping ErrInvalidArgument prefixed with method.
func Operand(method string, x int64) (int64, error) {
	if x < MinOperand {
		return 0, Errorf(method, ErrInvalidArgument, "operand must be ≥ %d, got %d", MinOperand, x)
	}

	return x, nil
}
