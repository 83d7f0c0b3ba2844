// SPDX-License-Identifier: MIT
// Package: lvseq/selfref
//
// euclid.go - the Euclid–Mullin sequence.

package selfref

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/lvseq/numtheory"
	"github.com/katalvlaran/lvseq/validate"
)

// EuclidMullin returns the first n terms of the Euclid–Mullin sequence:
// a(1) = 2 and a(k) is the smallest prime factor of a(1)·…·a(k-1) + 1.
//
// The running product is carried between steps. From the tenth term on the
// operand exceeds int64 and factor searches grow quickly (a(15) needs about
// 2.6e7 trial divisions, a(17) about 1.5e13). WithMaxSteps caps the trial
// divisions of the whole call and WithTimeout its duration; either one
// running out yields validate.ErrUnbounded.
func EuclidMullin(n int, opts ...Option) ([]*big.Int, error) {
	if _, err := validate.CountFor(MethodEuclidMullin, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	deadline := cfg.deadline()

	terms := make([]*big.Int, 0, n)
	terms = append(terms, big.NewInt(2))
	product := big.NewInt(2)
	operand := new(big.Int)
	one := big.NewInt(1)
	var divisions int64
	for len(terms) < n {
		operand.Add(product, one)

		budget := numtheory.FactorBudget{Deadline: deadline}
		if cfg.maxSteps > 0 {
			if divisions >= cfg.maxSteps {
				return nil, euclidExhausted(len(terms), n, divisions)
			}
			budget.MaxDivisions = cfg.maxSteps - divisions
		}
		p, used, err := numtheory.SmallestPrimeFactorBigWithin(operand, budget)
		divisions += used
		if errors.Is(err, validate.ErrUnbounded) {
			return nil, euclidExhausted(len(terms), n, divisions)
		}
		if err != nil {
			return nil, err
		}
		terms = append(terms, p)
		product.Mul(product, p)
	}

	return terms, nil
}

func euclidExhausted(have, n int, divisions int64) error {
	return validate.Errorf(MethodEuclidMullin, validate.ErrUnbounded,
		"%d of %d terms after %d trial divisions", have, n, divisions)
}
