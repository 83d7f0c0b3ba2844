// SPDX-License-Identifier: MIT
// Package: lvseq/selfref
//
// aronson.go - Aronson's sequence as an explicit state machine.
//
// "T is the first, fourth, eleventh, sixteenth, … letter in this sentence."
//
// State:
//   • sentence - letters only, index 0 is a placeholder so positions are
//     1-based; every found letter is redacted in place.
//   • cursor   - first position not yet examined (all targets before it
//     have been redacted).
//   • found    - the positions emitted so far.
//   • name     - the ordinal namer used to extend the sentence.

package selfref

import (
	"time"

	"github.com/katalvlaran/lvseq/ordinal"
	"github.com/katalvlaran/lvseq/validate"
)

const (
	aronsonSeed      = "_tisthefirstfourth" // "T is the first, fourth"
	aronsonLetter    = 't'
	aronsonRedacted  = '_'
	aronsonThreshold = 4 // positions up to this are already spelled out in the seed
)

type aronsonState struct {
	sentence []byte
	cursor   int
	found    []int64
	name     func(x int64, opts ...ordinal.Option) (string, error)
	steps    int64
	maxSteps int64
	deadline time.Time // zero = none
}

func newAronsonState(n int, cfg config) *aronsonState {
	return &aronsonState{
		sentence: []byte(aronsonSeed),
		cursor:   1,
		found:    make([]int64, 0, n),
		name:     ordinal.Name,
		maxSteps: cfg.maxSteps,
		deadline: cfg.deadline(),
	}
}

// step locates the next target letter, records and redacts it, and appends
// the ordinal of its position when beyond the seed threshold.
func (s *aronsonState) step() error {
	for ; s.cursor < len(s.sentence); s.cursor++ {
		if s.maxSteps > 0 && s.steps >= s.maxSteps {
			return validate.Errorf(MethodAronson, validate.ErrUnbounded,
				"%d terms after %d letters", len(s.found), s.steps)
		}
		if !s.deadline.IsZero() && s.steps%deadlineCheckEvery == 0 && time.Now().After(s.deadline) {
			return validate.Errorf(MethodAronson, validate.ErrUnbounded,
				"%d terms after %d letters: timed out", len(s.found), s.steps)
		}
		s.steps++
		if s.sentence[s.cursor] != aronsonLetter {
			continue
		}

		pos := int64(s.cursor)
		s.sentence[s.cursor] = aronsonRedacted
		s.cursor++
		s.found = append(s.found, pos)
		if pos > aronsonThreshold {
			word, err := s.name(pos)
			if err != nil {
				return err
			}
			s.sentence = append(s.sentence, word...)
		}

		return nil
	}

	return validate.Errorf(MethodAronson, validate.ErrUnbounded,
		"sentence exhausted after %d terms", len(s.found))
}

// Aronson returns the first n terms of Aronson's sequence.
func Aronson(n int, opts ...Option) ([]int64, error) {
	if _, err := validate.CountFor(MethodAronson, n); err != nil {
		return nil, err
	}

	s := newAronsonState(n, newConfig(opts...))
	for len(s.found) < n {
		if err := s.step(); err != nil {
			return nil, err
		}
	}

	return s.found, nil
}
