// SPDX-License-Identifier: MIT
// Package: lvseq/scan
//
// scan.go - the scanning engine.
//
// Contract:
//   • Scan(pred, start, n, opts...) returns exactly n accepted candidates in
//     ascending scan order (after any WithSeed terms), or an error and no
//     terms.
//   • Validation happens before the first candidate is examined.
//   • The predicate is called once per candidate, in order, with the accepted
//     history as of that moment (read-only).

package scan

import (
	"math"

	"github.com/katalvlaran/lvseq/validate"
)

// MethodScan is the error prefix used by Scan.
const MethodScan = "Scan"

// Predicate decides whether candidate joins the sequence. accepted is the
// history so far and must not be modified or retained.
type Predicate func(candidate int64, accepted []int64) bool

// Scan advances a candidate from start by the configured step, collecting
// the candidates pred accepts until n are found.
//
// Errors:
//   - validate.ErrInvalidArgument - n < 1 or pred == nil.
//   - validate.ErrUnbounded       - the iteration or time budget ran out, or
//     the candidate would overflow int64.
//
// Complexity: O(k·P) where k is the number of candidates examined and P the
// cost of one predicate call.
func Scan(pred Predicate, start int64, n int, opts ...Option) ([]int64, error) {
	if _, err := validate.CountFor(MethodScan, n); err != nil {
		return nil, err
	}
	if pred == nil {
		return nil, validate.Errorf(MethodScan, validate.ErrInvalidArgument, "predicate is nil")
	}
	cfg := newScanConfig(opts...)

	var deadlineSet bool
	deadline := cfg.now()
	if cfg.timeout > 0 {
		deadlineSet = true
		deadline = deadline.Add(cfg.timeout)
	}

	accepted := make([]int64, 0, n)
	for _, v := range cfg.seed {
		if len(accepted) == n {
			break
		}
		accepted = append(accepted, v)
	}
	if len(accepted) == n {
		return accepted, nil
	}

	var steps int64
	for candidate := start; ; candidate += cfg.step {
		if cfg.maxSteps > 0 && steps >= cfg.maxSteps {
			return nil, validate.Errorf(MethodScan, validate.ErrUnbounded,
				"%d of %d terms after %d candidates", len(accepted), n, steps)
		}
		if deadlineSet && steps%deadlineCheckEvery == 0 && cfg.now().After(deadline) {
			return nil, validate.Errorf(MethodScan, validate.ErrUnbounded,
				"%d of %d terms after %s", len(accepted), n, cfg.timeout)
		}
		steps++

		if pred(candidate, accepted) {
			accepted = append(accepted, candidate)
			if len(accepted) == n {
				return accepted, nil
			}
		}
		if candidate > math.MaxInt64-cfg.step {
			return nil, validate.Errorf(MethodScan, validate.ErrUnbounded,
				"candidate space exhausted at %d", candidate)
		}
	}
}
