// SPDX-License-Identifier: MIT
// Package: lvseq/validate
//
// errors.go - the two sentinel errors shared by the whole kernel.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Sentinels are never formatted at definition site; context is attached
//     with %w by Errorf below.
//   • Generators MUST NOT panic on user input. Panics are confined to option
//     constructors (WithX...) receiving meaningless values.

package validate

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a non-positive count or an operand outside the
// domain of a number-theory primitive.
var ErrInvalidArgument = errors.New("lvseq: invalid argument")

// ErrUnbounded indicates that a scan or search ran out of its iteration or
// time budget before producing the requested number of terms.
var ErrUnbounded = errors.New("lvseq: search budget exhausted")

// Errorf returns an error of the form "<method>: <message>: <sentinel>"
// that still satisfies errors.Is(err, sentinel).
func Errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
