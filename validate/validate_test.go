// SPDX-License-Identifier: MIT
package validate_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvseq/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCount covers the accepted range and both rejected classes.
func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		wantErr error
	}{
		{"one", 1, nil},
		{"large", 1 << 20, nil},
		{"zero", 0, validate.ErrInvalidArgument},
		{"negative", -7, validate.ErrInvalidArgument},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := validate.Count(tc.n)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.n, got, "Count must return n unchanged")
		})
	}
}

// TestCountFor checks that the method prefix is attached without hiding the sentinel.
func TestCountFor(t *testing.T) {
	_, err := validate.CountFor("Fibonacci", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "Fibonacci: count must be ≥ 1, got 0")
}

// TestOperand rejects zero and negative operands.
func TestOperand(t *testing.T) {
	x, err := validate.Operand("Factorize", 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), x)

	_, err = validate.Operand("Factorize", 0)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)

	_, err = validate.Operand("Factorize", -3)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	assert.NotErrorIs(t, err, validate.ErrUnbounded)
}
