// SPDX-License-Identifier: MIT
// Package: lvseq/selfref
//
// options.go - search budgets for the generators with data-dependent loops.

package selfref

import "time"

// deadlineCheckEvery is how many letters Aronson examines between clock
// reads when a timeout is set.
const deadlineCheckEvery = 1024

// Method names used as error prefixes.
const (
	MethodVanEck       = "VanEck"
	MethodRecaman      = "Recaman"
	MethodLookSay      = "LookSay"
	MethodBaumSweet    = "BaumSweet"
	MethodAronson      = "Aronson"
	MethodEuclidMullin = "EuclidMullin"
)

// Option customizes Aronson and EuclidMullin.
type Option func(*config)

type config struct {
	maxSteps int64         // 0 = unlimited
	timeout  time.Duration // 0 = unlimited
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxSteps bounds the inner search: letters examined by Aronson, trial
// divisions performed by EuclidMullin over the whole call. Zero removes the
// bound.
// Panics if k < 0.
func WithMaxSteps(k int64) Option {
	if k < 0 {
		panic("selfref: WithMaxSteps(k<0)")
	}
	return func(c *config) {
		c.maxSteps = k
	}
}

// WithTimeout bounds the wall-clock time of one call. Zero removes the
// bound. Panics if d < 0.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("selfref: WithTimeout(d<0)")
	}
	return func(c *config) {
		c.timeout = d
	}
}

// deadline returns the zero time when no timeout is set.
func (c config) deadline() time.Time {
	if c.timeout == 0 {
		return time.Time{}
	}

	return time.Now().Add(c.timeout)
}
