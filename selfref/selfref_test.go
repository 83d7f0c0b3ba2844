// SPDX-License-Identifier: MIT
package selfref_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/katalvlaran/lvseq/selfref"
	"github.com/katalvlaran/lvseq/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(terms []*big.Int) []string {
	out := make([]string, len(terms))
	for i, v := range terms {
		out[i] = v.String()
	}

	return out
}

// TestVanEck pins the canonical scenario and a longer prefix.
func TestVanEck(t *testing.T) {
	got, err := selfref.VanEck(6)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1, 0, 2, 0}, got)

	got, err = selfref.VanEck(18)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1, 0, 2, 0, 2, 2, 1, 6, 0, 5, 0, 2, 6, 5, 4, 0}, got)

	got, err = selfref.VanEck(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, got)
}

// TestVanEck_MatchesBackwardScan compares the map walk with the quadratic definition.
func TestVanEck_MatchesBackwardScan(t *testing.T) {
	const n = 300
	naive := []int64{0}
	for len(naive) < n {
		last := len(naive) - 1
		next := int64(0)
		for j := last - 1; j >= 0; j-- {
			if naive[j] == naive[last] {
				next = int64(last - j)
				break
			}
		}
		naive = append(naive, next)
	}

	got, err := selfref.VanEck(n)
	require.NoError(t, err)
	assert.Equal(t, naive, got)
}

// TestRecaman pins the canonical scenario and a prefix with repeats avoided.
func TestRecaman(t *testing.T) {
	got, err := selfref.Recaman(6)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3, 6, 2, 7}, got)

	got, err = selfref.Recaman(16)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3, 6, 2, 7, 13, 20, 12, 21, 11, 22, 10, 23, 9, 24}, got)
}

// TestLookSay pins the canonical scenario and checks big growth.
func TestLookSay(t *testing.T) {
	got, err := selfref.LookSay(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "11", "21", "1211", "111221"}, strs(got))

	got, err = selfref.LookSay(8)
	require.NoError(t, err)
	assert.Equal(t, "1113213211", got[7].String())

	got, err = selfref.LookSay(40)
	require.NoError(t, err)
	assert.Greater(t, len(got[39].String()), 19, "terms outgrow int64")
}

// TestBaumSweet pins the first sixteen terms.
func TestBaumSweet(t *testing.T) {
	got, err := selfref.BaumSweet(16)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1}, got)
}

// TestAronson pins the first thirty terms.
func TestAronson(t *testing.T) {
	got, err := selfref.Aronson(30)
	require.NoError(t, err)
	assert.Equal(t, []int64{
		1, 4, 11, 16, 24, 29, 33, 35, 39, 45, 47, 51, 56, 58, 62, 64, 69, 73, 78, 80,
		84, 89, 94, 99, 104, 111, 116, 122, 126, 131,
	}, got)
}

// TestAronson_Budget turns the letter search into ErrUnbounded.
func TestAronson_Budget(t *testing.T) {
	_, err := selfref.Aronson(10, selfref.WithMaxSteps(20))
	assert.ErrorIs(t, err, validate.ErrUnbounded)

	got, err := selfref.Aronson(3, selfref.WithMaxSteps(20))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 11}, got)

	assert.Panics(t, func() { selfref.WithMaxSteps(-1) })
}

// TestEuclidMullin pins the first twelve terms, crossing into big integers.
func TestEuclidMullin(t *testing.T) {
	got, err := selfref.EuclidMullin(12)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2", "3", "7", "43", "13", "53", "5", "6221671", "38709183810571", "139", "2801", "11",
	}, strs(got))

	_, err = selfref.EuclidMullin(12, selfref.WithMaxSteps(1))
	assert.ErrorIs(t, err, validate.ErrUnbounded)
}

// TestEuclidMullin_Budget bounds the trial divisions of the whole call:
// a(1..14) need 3,116,333 of them, a(15) alone about 2.6e7.
func TestEuclidMullin_Budget(t *testing.T) {
	got, err := selfref.EuclidMullin(14, selfref.WithMaxSteps(3_200_000))
	require.NoError(t, err)
	assert.Equal(t, "5471", got[13].String())

	_, err = selfref.EuclidMullin(17, selfref.WithMaxSteps(3_200_000))
	assert.ErrorIs(t, err, validate.ErrUnbounded)
}

// TestEuclidMullin_Timeout stops the a(15) search on the clock.
func TestEuclidMullin_Timeout(t *testing.T) {
	start := time.Now()
	_, err := selfref.EuclidMullin(17, selfref.WithTimeout(50*time.Millisecond))
	assert.ErrorIs(t, err, validate.ErrUnbounded)
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.Panics(t, func() { selfref.WithTimeout(-1) })
}

// TestAronson_Timeout checks the clock between letters.
func TestAronson_Timeout(t *testing.T) {
	_, err := selfref.Aronson(1_000_000, selfref.WithTimeout(time.Nanosecond))
	assert.ErrorIs(t, err, validate.ErrUnbounded)

	got, err := selfref.Aronson(3, selfref.WithTimeout(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 11}, got)
}

// TestGenerators_Invalid rejects non-positive counts everywhere.
func TestGenerators_Invalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := selfref.VanEck(n)
		assert.ErrorIs(t, err, validate.ErrInvalidArgument)
		_, err = selfref.Recaman(n)
		assert.ErrorIs(t, err, validate.ErrInvalidArgument)
		_, err = selfref.LookSay(n)
		assert.ErrorIs(t, err, validate.ErrInvalidArgument)
		_, err = selfref.BaumSweet(n)
		assert.ErrorIs(t, err, validate.ErrInvalidArgument)
		_, err = selfref.Aronson(n)
		assert.ErrorIs(t, err, validate.ErrInvalidArgument)
		_, err = selfref.EuclidMullin(n)
		assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	}
}
