// SPDX-License-Identifier: MIT
// Package: lvseq/sequences
//
// closed.go - sequences evaluated term by term from a formula.
//
// Indexing:
//   • "over whole numbers" sequences evaluate i = 0 … n-1;
//   • "over natural numbers" sequences evaluate i = 1 … n.
// All arithmetic is exact (*big.Int).

package sequences

import (
	"math/big"
	"math/bits"

	"github.com/katalvlaran/lvseq/validate"
)

// MethodPascalRow is the error prefix used by PascalRow.
const MethodPascalRow = "PascalRow"

// formula is a closed form evaluated at a single index.
type formula func(i int64) *big.Int

// evaluate maps f over n consecutive indices starting at first.
func evaluate(method string, n int, first int64, f formula) ([]*big.Int, error) {
	if _, err := validate.CountFor(method, n); err != nil {
		return nil, err
	}
	out := make([]*big.Int, n)
	for k := range out {
		out[k] = f(first + int64(k))
	}

	return out, nil
}

// Arithmetic helpers over fresh values; none of them mutates its arguments.

func num(x int64) *big.Int { return big.NewInt(x) }

func mul(xs ...*big.Int) *big.Int {
	acc := big.NewInt(1)
	for _, x := range xs {
		acc.Mul(acc, x)
	}

	return acc
}

func add(xs ...*big.Int) *big.Int {
	acc := new(big.Int)
	for _, x := range xs {
		acc.Add(acc, x)
	}

	return acc
}

func sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

func quo(a *big.Int, d int64) *big.Int { return new(big.Int).Quo(a, big.NewInt(d)) }

func pow2(e int64) *big.Int { return new(big.Int).Lsh(big.NewInt(1), uint(e)) }

func binomial(n, k int64) *big.Int { return new(big.Int).Binomial(n, k) }

// Whole returns 0, 1, 2, … (A001477).
func Whole(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Whole", n, 0, num)
}

// Natural returns 1, 2, 3, … (A000027).
func Natural(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Natural", n, 1, num)
}

// Negative returns -1, -2, -3, … (A001478).
func Negative(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Negative", n, 1, func(i int64) *big.Int { return num(-i) })
}

// Square returns i² over whole numbers (A000290).
func Square(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Square", n, 0, func(i int64) *big.Int { return mul(num(i), num(i)) })
}

// Cube returns i³ over whole numbers (A000578).
func Cube(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Cube", n, 0, func(i int64) *big.Int { return mul(num(i), num(i), num(i)) })
}

// Factorial returns 0!, 1!, 2!, … (A000142).
func Factorial(n int, _ ...Option) ([]*big.Int, error) {
	if _, err := validate.CountFor("Factorial", n); err != nil {
		return nil, err
	}
	out := make([]*big.Int, n)
	acc := big.NewInt(1)
	for i := range out {
		if i > 0 {
			acc = mul(acc, num(int64(i)))
		}
		out[i] = acc
	}

	return out, nil
}

// Triangular returns i(i+1)/2 over natural numbers (A000217).
func Triangular(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Triangular", n, 1, func(i int64) *big.Int {
		return quo(mul(num(i), num(i+1)), 2)
	})
}

// Tetrahedral returns i(i+1)(i+2)/6 over natural numbers (A000292).
func Tetrahedral(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Tetrahedral", n, 1, func(i int64) *big.Int {
		return quo(mul(num(i), num(i+1), num(i+2)), 6)
	})
}

// Octahedral returns i(2i²+1)/3 over natural numbers (A005900).
func Octahedral(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Octahedral", n, 1, func(i int64) *big.Int {
		return quo(mul(num(i), add(mul(num(2), num(i), num(i)), num(1))), 3)
	})
}

// Dodecahedral returns i(3i-1)(3i-2)/2 over natural numbers (A006566).
func Dodecahedral(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Dodecahedral", n, 1, func(i int64) *big.Int {
		x := num(i)
		return quo(mul(x, sub(mul(num(3), x), num(1)), sub(mul(num(3), x), num(2))), 2)
	})
}

// Icosahedral returns i(5i²-5i+2)/2 over natural numbers (A006564).
func Icosahedral(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Icosahedral", n, 1, func(i int64) *big.Int {
		x := num(i)
		inner := add(sub(mul(num(5), x, x), mul(num(5), x)), num(2))
		return quo(mul(x, inner), 2)
	})
}

// SquarePyramidal returns 1² + … + i² over natural numbers (A000330).
func SquarePyramidal(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("SquarePyramidal", n, 1, func(i int64) *big.Int {
		return quo(mul(num(i), num(i+1), num(2*i+1)), 6)
	})
}

// Star returns the centered hexagram numbers 6i(i-1)+1 over natural
// numbers (A003154).
func Star(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Star", n, 1, func(i int64) *big.Int {
		return add(mul(num(6), num(i), num(i-1)), num(1))
	})
}

// StellaOctangula returns i(2i²-1) over whole numbers (A007588).
func StellaOctangula(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("StellaOctangula", n, 0, func(i int64) *big.Int {
		return mul(num(i), sub(mul(num(2), num(i), num(i)), num(1)))
	})
}

// CentralPolygon returns the lazy caterer's numbers (i²+i+2)/2 over whole
// numbers (A000124).
func CentralPolygon(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("CentralPolygon", n, 0, func(i int64) *big.Int {
		return quo(add(mul(num(i), num(i)), num(i), num(2)), 2)
	})
}

// MagicConstants returns i(i²+1)/2 over whole numbers (A006003).
func MagicConstants(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("MagicConstants", n, 0, func(i int64) *big.Int {
		return quo(mul(num(i), add(mul(num(i), num(i)), num(1))), 2)
	})
}

// Woodall returns i·2^i - 1 over natural numbers (A003261).
func Woodall(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Woodall", n, 1, func(i int64) *big.Int {
		return sub(mul(num(i), pow2(i)), num(1))
	})
}

// Cullen returns i·2^i + 1 over whole numbers (A002064).
func Cullen(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Cullen", n, 0, func(i int64) *big.Int {
		return add(mul(num(i), pow2(i)), num(1))
	})
}

// Pronic returns i(i+1) over whole numbers (A002378).
func Pronic(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Pronic", n, 0, func(i int64) *big.Int {
		return mul(num(i), num(i+1))
	})
}

// Carol returns (2^i - 1)² - 2 = 4^i - 2^(i+1) - 1 over natural numbers
// (A093112).
func Carol(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Carol", n, 1, func(i int64) *big.Int {
		return sub(sub(pow2(2*i), pow2(i+1)), num(1))
	})
}

// Gould returns the number of odd entries in Pascal rows 1 … n, which is
// 2^popcount(row) (A001316 from its second term).
func Gould(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Gould", n, 1, func(i int64) *big.Int {
		return pow2(int64(bits.OnesCount64(uint64(i))))
	})
}

// CentralBinomial returns C(2i, i) over whole numbers (A000984).
func CentralBinomial(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("CentralBinomial", n, 0, func(i int64) *big.Int {
		return binomial(2*i, i)
	})
}

// Catalan returns C(2i, i)/(i+1) over whole numbers (A000108).
func Catalan(n int, _ ...Option) ([]*big.Int, error) {
	return evaluate("Catalan", n, 0, func(i int64) *big.Int {
		return quo(binomial(2*i, i), i+1)
	})
}

// PascalRow returns row `row` of Pascal's triangle: row+1 binomial
// coefficients C(row, 0) … C(row, row). Rows start at 0.
func PascalRow(row int) ([]*big.Int, error) {
	if row < 0 {
		return nil, validate.Errorf(MethodPascalRow, validate.ErrInvalidArgument,
			"row must be ≥ 0, got %d", row)
	}
	out := make([]*big.Int, row+1)
	out[0] = big.NewInt(1)
	for k := 1; k <= row; k++ {
		// C(row,k) = C(row,k-1)·(row-k+1)/k
		out[k] = quo(mul(out[k-1], num(int64(row-k+1))), int64(k))
	}

	return out, nil
}
