// SPDX-License-Identifier: MIT
package sequences_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/sequences"
	"github.com/katalvlaran/lvseq/validate"
)

func ints(vals ...int64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v).String()
	}

	return out
}

func TestClosedForms(t *testing.T) {
	cases := map[string][]string{
		"whole":            ints(0, 1, 2, 3, 4, 5, 6, 7),
		"natural":          ints(1, 2, 3, 4, 5, 6, 7, 8),
		"negative":         ints(-1, -2, -3, -4, -5, -6, -7, -8),
		"square":           ints(0, 1, 4, 9, 16, 25, 36, 49),
		"cube":             ints(0, 1, 8, 27, 64, 125, 216, 343),
		"factorial":        ints(1, 1, 2, 6, 24, 120, 720, 5040),
		"triangular":       ints(1, 3, 6, 10, 15, 21, 28, 36),
		"tetrahedral":      ints(1, 4, 10, 20, 35, 56, 84, 120),
		"octahedral":       ints(1, 6, 19, 44, 85, 146, 231, 344),
		"dodecahedral":     ints(1, 20, 84, 220, 455, 816, 1330, 2024),
		"icosahedral":      ints(1, 12, 48, 124, 255, 456, 742, 1128),
		"sq_pyramid":       ints(1, 5, 14, 30, 55, 91, 140, 204),
		"star":             ints(1, 13, 37, 73, 121, 181, 253, 337),
		"stella_octangula": ints(0, 1, 14, 51, 124, 245, 426, 679),
		"central_polygon":  ints(1, 2, 4, 7, 11, 16, 22, 29),
		"magic_constants":  ints(0, 1, 5, 15, 34, 65, 111, 175),
		"woodall":          ints(1, 7, 23, 63, 159, 383, 895, 2047),
		"cullen":           ints(1, 3, 9, 25, 65, 161, 385, 897),
		"pronic":           ints(0, 2, 6, 12, 20, 30, 42, 56),
		"carol":            ints(-1, 7, 47, 223, 959, 3967, 16127, 65023),
		"gould":            ints(2, 2, 4, 2, 4, 4, 8, 2),
		"central_binomial": ints(1, 2, 6, 20, 70, 252, 924, 3432),
		"catalan":          ints(1, 1, 2, 5, 14, 42, 132, 429),
	}
	for name, want := range cases {
		name, want := name, want
		t.Run(name, func(t *testing.T) {
			e, ok := sequences.Lookup(name)
			require.True(t, ok)
			assert.Equal(t, sequences.ClosedForm, e.Kind)
			assert.Equal(t, want, gen(t, name, len(want)))
		})
	}
}

func TestRecurrences(t *testing.T) {
	cases := map[string][]string{
		"fibonacci":      ints(0, 1, 1, 2, 3, 5, 8, 13),
		"negafibonacci":  ints(0, 1, -1, 2, -3, 5, -8, 13),
		"tribonacci":     ints(0, 0, 1, 1, 2, 4, 7, 13, 24, 44),
		"negatribonacci": ints(0, 0, -1, 1, -2, 4, -7, 13, -24, 44),
		"lucas":          ints(2, 1, 3, 4, 7, 11, 18, 29),
		"negalucas":      ints(2, -1, 3, -4, 7, -11, 18, -29),
		"supergolden":    ints(1, 1, 1, 2, 3, 4, 6, 9, 13, 19),
		"padovan":        ints(1, 1, 1, 2, 2, 3, 4, 5, 7, 9),
		"perrin":         ints(3, 0, 2, 3, 2, 5, 5, 7, 10, 12),
		"pell":           ints(0, 1, 2, 5, 12, 29, 70, 169, 408, 985),
		"jacobsthal":     ints(0, 1, 1, 3, 5, 11, 21, 43, 85, 171),
		"sylvester":      ints(2, 3, 7, 43, 1807),
	}
	for name, want := range cases {
		name, want := name, want
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, gen(t, name, len(want)))
			// prefixes of a longer run are exact
			assert.Equal(t, want[:2], gen(t, name, 2))
		})
	}
}

func TestScanning(t *testing.T) {
	cases := map[string][]string{
		"prime":          ints(2, 3, 5, 7, 11, 13, 17, 19),
		"composite":      ints(4, 6, 8, 9, 10, 12, 14, 15),
		"palindrome":     ints(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22),
		"arithmetic":     ints(1, 3, 5, 6, 7, 11, 13, 14),
		"perfect":        ints(6, 28, 496, 8128),
		"undulating":     ints(101, 121, 131, 141, 151, 161, 171, 181),
		"sophie_germain": ints(2, 3, 5, 11, 23, 29, 41, 53),
		"circular_prime": ints(2, 3, 5, 7, 11, 13, 17, 37, 79, 113),
		"prime_powers":   ints(2, 3, 4, 5, 7, 8, 9, 11),
		"semiprime":      ints(4, 6, 9, 10, 14, 15, 21, 22),
		"sphenic":        ints(30, 42, 66, 70, 78, 102, 105, 110),
	}
	for name, want := range cases {
		name, want := name, want
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, gen(t, name, len(want)))
		})
	}
}

func TestSelfReferential(t *testing.T) {
	cases := map[string][]string{
		"van_eck":       ints(0, 0, 1, 0, 2, 0, 2, 2, 1, 6),
		"recaman":       ints(0, 1, 3, 6, 2, 7, 13, 20, 12, 21),
		"look_say":      ints(1, 11, 21, 1211, 111221, 312211),
		"aronson":       ints(1, 4, 11, 16, 24),
		"baum_sweet":    ints(1, 1, 0, 1, 1, 0, 0, 1),
		"euclid_mullin": ints(2, 3, 7, 43, 13, 53, 5),
	}
	for name, want := range cases {
		name, want := name, want
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, gen(t, name, len(want)))
		})
	}
}

func TestPascalRow(t *testing.T) {
	row, err := sequences.PascalRow(6)
	require.NoError(t, err)
	assert.Equal(t, ints(1, 6, 15, 20, 15, 6, 1), strs(row))

	row, err = sequences.PascalRow(0)
	require.NoError(t, err)
	assert.Equal(t, ints(1), strs(row))

	_, err = sequences.PascalRow(-1)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

func TestPascalRow_MatchesGould(t *testing.T) {
	gould := gen(t, "gould", 16)
	for r := 1; r <= 16; r++ {
		row, err := sequences.PascalRow(r)
		require.NoError(t, err)
		odd := 0
		for _, v := range row {
			if v.Bit(0) == 1 {
				odd++
			}
		}
		assert.Equal(t, big.NewInt(int64(odd)).String(), gould[r-1], "row %d", r)
	}
}

func TestBigTerms(t *testing.T) {
	fact := gen(t, "factorial", 31)
	assert.Equal(t, "265252859812191058636308480000000", fact[30])

	fib := gen(t, "fibonacci", 101)
	assert.Equal(t, "354224848179261915075", fib[100])

	cat := gen(t, "catalan", 41)
	assert.Equal(t, "2622127042276492108820", cat[40])
}
