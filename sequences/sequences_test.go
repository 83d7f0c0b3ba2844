// SPDX-License-Identifier: MIT
package sequences_test

import (
	"bytes"
	"math/big"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/sequences"
	"github.com/katalvlaran/lvseq/validate"
)

func strs(terms []*big.Int) []string {
	out := make([]string, len(terms))
	for i, v := range terms {
		out[i] = v.String()
	}

	return out
}

func gen(t *testing.T, name string, n int) []string {
	t.Helper()
	terms, err := sequences.Generate(name, n)
	require.NoError(t, err, name)

	return strs(terms)
}

func TestGenerate_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		n    int
		want []string
	}{
		{"fibonacci", 8, []string{"0", "1", "1", "2", "3", "5", "8", "13"}},
		{"prime", 5, []string{"2", "3", "5", "7", "11"}},
		{"perfect", 2, []string{"6", "28"}},
		{"look_say", 5, []string{"1", "11", "21", "1211", "111221"}},
		{"recaman", 6, []string{"0", "1", "3", "6", "2", "7"}},
		{"van_eck", 6, []string{"0", "0", "1", "0", "2", "0"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gen(t, tc.name, tc.n))
		})
	}
}

func TestGenerate_LengthEveryName(t *testing.T) {
	for _, name := range sequences.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{1, 2, 3, 4} {
				terms, err := sequences.Generate(name, n)
				require.NoError(t, err)
				require.Len(t, terms, n)
				for i, v := range terms {
					require.NotNil(t, v, "term %d", i)
				}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, name := range sequences.Names() {
		a := gen(t, name, 4)
		b := gen(t, name, 4)
		assert.Equal(t, a, b, name)
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := sequences.Generate("fibonacci", 0)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)

	_, err = sequences.Generate("no_such_thing", 5)
	assert.ErrorIs(t, err, sequences.ErrUnknownSequence)

	// the count is checked before the name
	_, err = sequences.Generate("no_such_thing", -1)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	assert.NotErrorIs(t, err, sequences.ErrUnknownSequence)

	for _, name := range sequences.Names() {
		e, ok := sequences.Lookup(name)
		require.True(t, ok)
		_, err := e.Generate(0)
		assert.ErrorIs(t, err, validate.ErrInvalidArgument, name)
	}
}

func TestGenerate_Budgets(t *testing.T) {
	_, err := sequences.Generate("perfect", 5, sequences.WithMaxSteps(100_000))
	assert.ErrorIs(t, err, validate.ErrUnbounded)

	_, err = sequences.Generate("perfect", 5, sequences.WithTimeout(10*time.Millisecond))
	assert.ErrorIs(t, err, validate.ErrUnbounded)

	// self-referential searches honor both budgets
	_, err = sequences.Generate("euclid_mullin", 17, sequences.WithMaxSteps(3_200_000))
	assert.ErrorIs(t, err, validate.ErrUnbounded)
	_, err = sequences.Generate("euclid_mullin", 17, sequences.WithTimeout(50*time.Millisecond))
	assert.ErrorIs(t, err, validate.ErrUnbounded)
	_, err = sequences.Generate("aronson", 1_000_000, sequences.WithTimeout(time.Nanosecond))
	assert.ErrorIs(t, err, validate.ErrUnbounded)

	// a generous budget does not change the output
	got, err := sequences.Generate("perfect", 3, sequences.WithMaxSteps(1_000))
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "28", "496"}, strs(got))

	// closed forms ignore budgets
	got, err = sequences.Generate("square", 3, sequences.WithMaxSteps(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "4"}, strs(got))

	assert.Panics(t, func() { sequences.WithMaxSteps(-1) })
	assert.Panics(t, func() { sequences.WithTimeout(-time.Second) })
	assert.Panics(t, func() { sequences.WithLogger(nil) })
}

func TestGenerate_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := sequences.Generate("fibonacci", 8, sequences.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "generated")
	assert.Contains(t, buf.String(), "name=fibonacci")
	assert.Contains(t, buf.String(), "kind=recurrence")

	buf.Reset()
	_, err = sequences.Generate("perfect", 5, sequences.WithLogger(logger), sequences.WithMaxSteps(10))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "generation failed")
}

func TestRegistry(t *testing.T) {
	names := sequences.Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, sequences.Entries(), len(names))

	for _, e := range sequences.Entries() {
		assert.NotEmpty(t, e.Summary, e.Name)
		assert.NotEqual(t, "unknown", e.Kind.String(), e.Name)
	}

	e, ok := sequences.Lookup("jacobstathal")
	require.True(t, ok)
	assert.Equal(t, "jacobsthal", e.Name)

	_, ok = sequences.Lookup("pascal")
	assert.False(t, ok, "pascal rows are not fixed-length and stay out of the registry")

	// callers cannot corrupt the registry through the returned slices
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", sequences.Names()[0])
}

func TestKind(t *testing.T) {
	for _, k := range []sequences.Kind{sequences.ClosedForm, sequences.Recurrence, sequences.Scanning, sequences.SelfReferential} {
		got, ok := sequences.ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := sequences.ParseKind("bogus")
	assert.False(t, ok)
	assert.Equal(t, "unknown", sequences.Kind(42).String())
}

func TestGenerate_Concurrent(t *testing.T) {
	want := gen(t, "circular_prime", 10)

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			terms, err := sequences.Generate("circular_prime", 10)
			if err == nil {
				results[i] = strs(terms)
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
