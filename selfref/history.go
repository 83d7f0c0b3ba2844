// SPDX-License-Identifier: MIT
// Package: lvseq/selfref
//
// history.go - Van Eck, Recamán and Baum–Sweet.

package selfref

import (
	"github.com/katalvlaran/lvseq/digits"
	"github.com/katalvlaran/lvseq/validate"
)

// VanEck returns the first n terms of Van Eck's sequence: a(0) = 0; a(i+1) is
// 0 when a(i) never occurred before index i, otherwise the distance from i
// back to its most recent earlier occurrence.
//
// Instead of scanning the history backwards each step, the index of the last
// occurrence of every value is kept in a map; the output is identical.
// Complexity: O(n) time, O(n) space.
func VanEck(n int) ([]int64, error) {
	if _, err := validate.CountFor(MethodVanEck, n); err != nil {
		return nil, err
	}

	terms := make([]int64, 1, n)
	lastSeen := make(map[int64]int)
	for i := 0; len(terms) < n; i++ {
		v := terms[i]
		next := int64(0)
		if j, ok := lastSeen[v]; ok {
			next = int64(i - j)
		}
		lastSeen[v] = i
		terms = append(terms, next)
	}

	return terms, nil
}

// Recaman returns the first n terms of Recamán's sequence: a(0) = 0 and
// a(i) = a(i-1) − i when that is positive and not yet in the sequence,
// otherwise a(i-1) + i.
// Complexity: O(n) time with a membership set.
func Recaman(n int) ([]int64, error) {
	if _, err := validate.CountFor(MethodRecaman, n); err != nil {
		return nil, err
	}

	terms := make([]int64, 1, n)
	seen := map[int64]struct{}{0: {}}
	for i := int64(1); len(terms) < n; i++ {
		prev := terms[len(terms)-1]
		next := prev - i
		if _, dup := seen[next]; next <= 0 || dup {
			next = prev + i
		}
		seen[next] = struct{}{}
		terms = append(terms, next)
	}

	return terms, nil
}

// BaumSweet returns the first n terms of the Baum–Sweet sequence: b(k) = 1
// when the binary expansion of k has no maximal block of zeros of odd
// length, else 0. b(0) = 1.
func BaumSweet(n int) ([]int64, error) {
	if _, err := validate.CountFor(MethodBaumSweet, n); err != nil {
		return nil, err
	}

	terms := make([]int64, 0, n)
	terms = append(terms, 1)
	for k := int64(1); len(terms) < n; k++ {
		if digits.HasOddRun(digits.BinaryOf(k), 0) {
			terms = append(terms, 0)
		} else {
			terms = append(terms, 1)
		}
	}

	return terms, nil
}
