// SPDX-License-Identifier: MIT
// Package: lvseq/sequences
//
// errors.go - registry sentinels. Count and budget failures reuse the
// validate sentinels.

package sequences

import "errors"

// ErrUnknownSequence indicates a name that is neither registered nor an alias.
var ErrUnknownSequence = errors.New("sequences: unknown sequence")

// MethodGenerate is the error prefix used by Generate.
const MethodGenerate = "Generate"
