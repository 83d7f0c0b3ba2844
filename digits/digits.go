// SPDX-License-Identifier: MIT
// Package: lvseq/digits
//
// digits.go - conversion between integers and digit symbol sequences.

package digits

import (
	"math/big"
	"slices"
)

// Bases understood by the helpers below.
const (
	Binary  = 2
	Decimal = 10
)

// Of returns the base-b digits of |x|, most significant first.
// Of(0, b) is [0]. Panics if b < 2 (programmer error).
func Of(x int64, b int) []byte {
	if b < 2 {
		panic("digits: Of(base<2)")
	}
	u := uint64(x)
	if x < 0 {
		u = uint64(-(x + 1)) + 1 // |MinInt64| without overflow
	}
	if u == 0 {
		return []byte{0}
	}

	out := make([]byte, 0, 20)
	base := uint64(b)
	for u > 0 {
		out = append(out, byte(u%base))
		u /= base
	}
	slices.Reverse(out)

	return out
}

// DecimalOf is Of(x, Decimal).
func DecimalOf(x int64) []byte { return Of(x, Decimal) }

// BinaryOf is Of(x, Binary).
func BinaryOf(x int64) []byte { return Of(x, Binary) }

// Value interprets symbols as a base-b number. Leading zeros are allowed.
func Value(symbols []byte, b int) *big.Int {
	v := new(big.Int)
	base := big.NewInt(int64(b))
	d := new(big.Int)
	for _, s := range symbols {
		v.Mul(v, base)
		v.Add(v, d.SetInt64(int64(s)))
	}

	return v
}

// Int64Value is Value for sequences known to fit in an int64.
func Int64Value(symbols []byte, b int) int64 {
	var v int64
	for _, s := range symbols {
		v = v*int64(b) + int64(s)
	}

	return v
}

// FromBig returns the decimal digits of |x|, most significant first.
func FromBig(x *big.Int) []byte {
	text := new(big.Int).Abs(x).Text(Decimal)
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = text[i] - '0'
	}

	return out
}
