// SPDX-License-Identifier: MIT
// Package: lvseq/sequences
//
// options.go - functional options for Generate and the named generators.
//
// Contract:
//   • Options are resolved once per call (last wins); defaults are
//     deterministic: no budgets, no logger.
//   • Option constructors panic on meaningless values; generators never do.
//   • Budgets apply to scanning sequences and to the self-referential
//     generators with data-dependent searches (aronson, euclid_mullin);
//     closed forms and recurrences ignore them.

package sequences

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvseq/scan"
	"github.com/katalvlaran/lvseq/selfref"
)

// Option customizes a generation call.
type Option func(*config)

type config struct {
	maxSteps int64
	timeout  time.Duration
	logger   *log.Logger
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxSteps bounds the candidates a scan may examine (or the inner search
// of a self-referential generator). Zero removes the bound. Panics if k < 0.
func WithMaxSteps(k int64) Option {
	if k < 0 {
		panic("sequences: WithMaxSteps(k<0)")
	}
	return func(c *config) {
		c.maxSteps = k
	}
}

// WithTimeout bounds the wall-clock time of a scan (or of a self-referential
// generator's inner search). Zero removes the bound.
// Panics if d < 0.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("sequences: WithTimeout(d<0)")
	}
	return func(c *config) {
		c.timeout = d
	}
}

// WithLogger enables a debug line per generated sequence. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("sequences: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// scanOptions translates the budgets for the scanning engine.
func (c config) scanOptions() []scan.Option {
	var opts []scan.Option
	if c.maxSteps > 0 {
		opts = append(opts, scan.WithMaxSteps(c.maxSteps))
	}
	if c.timeout > 0 {
		opts = append(opts, scan.WithTimeout(c.timeout))
	}

	return opts
}

// selfrefOptions translates the budgets for the self-referential generators.
func (c config) selfrefOptions() []selfref.Option {
	var opts []selfref.Option
	if c.maxSteps > 0 {
		opts = append(opts, selfref.WithMaxSteps(c.maxSteps))
	}
	if c.timeout > 0 {
		opts = append(opts, selfref.WithTimeout(c.timeout))
	}

	return opts
}
