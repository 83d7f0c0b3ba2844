// SPDX-License-Identifier: MIT
// Package: lvseq/scan
//
// options.go - functional options and the resolved scan configuration.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs; Scan
//     itself never panics.
//   • Defaults: step 1, no iteration budget, no time budget, no seed.

package scan

import "time"

// DefaultStep is the candidate increment when WithStep is not given.
const DefaultStep int64 = 1

// deadlineCheckEvery is how many candidates pass between clock reads when a
// timeout is set.
const deadlineCheckEvery = 1024

// Option customizes a Scan call.
type Option func(*scanConfig)

// scanConfig is resolved once per call and passed by value.
type scanConfig struct {
	step     int64
	maxSteps int64 // 0 = unlimited
	timeout  time.Duration
	seed     []int64
	now      func() time.Time
}

// newScanConfig applies opts in order over deterministic defaults.
func newScanConfig(opts ...Option) scanConfig {
	cfg := scanConfig{
		step: DefaultStep,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStep sets the candidate increment. Panics if step < 1.
func WithStep(step int64) Option {
	if step < 1 {
		panic("scan: WithStep(step<1)")
	}
	return func(c *scanConfig) {
		c.step = step
	}
}

// WithMaxSteps bounds the number of candidates examined. Zero removes the
// bound. Panics if k < 0.
func WithMaxSteps(k int64) Option {
	if k < 0 {
		panic("scan: WithMaxSteps(k<0)")
	}
	return func(c *scanConfig) {
		c.maxSteps = k
	}
}

// WithTimeout bounds the wall-clock time of the scan. Zero removes the
// bound. Panics if d < 0.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("scan: WithTimeout(d<0)")
	}
	return func(c *scanConfig) {
		c.timeout = d
	}
}

// WithSeed pre-accepts terms. They open the result, count toward n and are
// visible to the predicate as history, but are not themselves tested.
// The values are copied.
func WithSeed(accepted ...int64) Option {
	seed := append([]int64(nil), accepted...)
	return func(c *scanConfig) {
		c.seed = seed
	}
}

// withClock replaces the time source; tests only.
func withClock(now func() time.Time) Option {
	return func(c *scanConfig) {
		c.now = now
	}
}
