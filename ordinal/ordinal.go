// SPDX-License-Identifier: MIT
// Package: lvseq/ordinal
//
// ordinal.go - digit-group based English number names.

package ordinal

import (
	"strings"

	"github.com/katalvlaran/lvseq/validate"
)

// Method names used as error prefixes.
const (
	MethodName     = "Name"
	MethodCardinal = "Cardinal"
)

// MaxValue is the largest nameable number.
const MaxValue int64 = 999_999_999_999_999

const (
	hundred  = 100
	group    = 1000
	teensTop = 20
)

var small = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// scales are the magnitude words, largest first.
var scales = [...]struct {
	value int64
	word  string
}{
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

// irregular maps cardinal last words to their ordinal spelling.
var irregular = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// Option customizes rendering.
type Option func(*config)

type config struct {
	sep string
}

// WithSeparator joins words with sep instead of concatenating them.
func WithSeparator(sep string) Option {
	return func(c *config) {
		c.sep = sep
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Cardinal returns the English cardinal name of x.
func Cardinal(x int64, opts ...Option) (string, error) {
	words, err := cardinalWords(MethodCardinal, x)
	if err != nil {
		return "", err
	}

	return strings.Join(words, newConfig(opts...).sep), nil
}

// Name returns the English ordinal name of x: 1 → "first", 11 → "eleventh",
// 1000 → "onethousandth".
func Name(x int64, opts ...Option) (string, error) {
	words, err := cardinalWords(MethodName, x)
	if err != nil {
		return "", err
	}
	last := len(words) - 1
	words[last] = toOrdinal(words[last])

	return strings.Join(words, newConfig(opts...).sep), nil
}

func cardinalWords(method string, x int64) ([]string, error) {
	if x < 0 || x > MaxValue {
		return nil, validate.Errorf(method, validate.ErrInvalidArgument,
			"value must be in [0,%d], got %d", MaxValue, x)
	}
	if x == 0 {
		return []string{small[0]}, nil
	}

	words := make([]string, 0, 16)
	for _, s := range scales {
		if x >= s.value {
			words = appendGroup(words, x/s.value)
			words = append(words, s.word)
			x %= s.value
		}
	}
	if x > 0 {
		words = appendGroup(words, x)
	}

	return words, nil
}

// appendGroup names 1 ≤ g < 1000.
func appendGroup(words []string, g int64) []string {
	if h := g / hundred; h > 0 {
		words = append(words, small[h], "hundred")
	}
	r := g % hundred
	switch {
	case r >= teensTop:
		words = append(words, tens[r/10])
		if r%10 > 0 {
			words = append(words, small[r%10])
		}
	case r > 0:
		words = append(words, small[r])
	}

	return words
}

func toOrdinal(word string) string {
	if o, ok := irregular[word]; ok {
		return o
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ieth"
	}

	return word + "th"
}
