// SPDX-License-Identifier: MIT
package numtheory_test

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/katalvlaran/lvseq/numtheory"
	"github.com/katalvlaran/lvseq/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sieve returns a ground-truth primality table for [0, limit].
func sieve(limit int) []bool {
	composite := make([]bool, limit+1)
	prime := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		prime[i] = true
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	return prime
}

// TestIsPrime_MatchesSieve checks every x in [1, 10000] against a sieve.
func TestIsPrime_MatchesSieve(t *testing.T) {
	t.Parallel()

	const limit = 10000
	truth := sieve(limit)
	for x := 1; x <= limit; x++ {
		if got := numtheory.IsPrime(int64(x)); got != truth[x] {
			t.Fatalf("IsPrime(%d) = %v, want %v", x, got, truth[x])
		}
	}
}

// TestIsPrime_Edges covers the small and negative domain.
func TestIsPrime_Edges(t *testing.T) {
	for _, x := range []int64{-7, -1, 0, 1, 4, 9, 25} {
		assert.Falsef(t, numtheory.IsPrime(x), "IsPrime(%d)", x)
	}
	for _, x := range []int64{2, 3, 5, 7919, 2147483647} {
		assert.Truef(t, numtheory.IsPrime(x), "IsPrime(%d)", x)
	}
}

// TestSmallestPrimeFactor covers primes, composites, 1 and invalid operands.
func TestSmallestPrimeFactor(t *testing.T) {
	tests := []struct {
		x, want int64
	}{
		{1, 1}, {2, 2}, {9, 3}, {13, 13}, {91, 7}, {1807, 13}, {6221671, 6221671},
	}
	for _, tc := range tests {
		got, err := numtheory.SmallestPrimeFactor(tc.x)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "SmallestPrimeFactor(%d)", tc.x)
	}

	_, err := numtheory.SmallestPrimeFactor(0)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

// TestSmallestPrimeFactorBig exercises both the native and the big paths.
func TestSmallestPrimeFactorBig(t *testing.T) {
	m89 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 89), big.NewInt(1)) // Mersenne prime

	tests := []struct {
		name string
		x    *big.Int
		want *big.Int
	}{
		{"native composite", big.NewInt(1807), big.NewInt(13)},
		{"big prime", m89, m89},
		{"big even", new(big.Int).Lsh(big.NewInt(1), 70), big.NewInt(2)},
		{"big times 3", new(big.Int).Mul(m89, big.NewInt(3)), big.NewInt(3)},
		{"big times 139", new(big.Int).Mul(m89, big.NewInt(139)), big.NewInt(139)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			before := new(big.Int).Set(tc.x)
			got, err := numtheory.SmallestPrimeFactorBig(tc.x)
			require.NoError(t, err)
			assert.Zero(t, tc.want.Cmp(got), "got %v, want %v", got, tc.want)
			assert.Zero(t, before.Cmp(tc.x), "input must not be modified")
		})
	}

	_, err := numtheory.SmallestPrimeFactorBig(big.NewInt(0))
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = numtheory.SmallestPrimeFactorBig(nil)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

// TestSmallestPrimeFactorBigWithin counts divisions and stops on either bound.
func TestSmallestPrimeFactorBigWithin(t *testing.T) {
	m89 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 89), big.NewInt(1))
	x := new(big.Int).Mul(m89, big.NewInt(1_000_003)) // odd divisors 3..1000003

	got, used, err := numtheory.SmallestPrimeFactorBigWithin(x, numtheory.FactorBudget{})
	require.NoError(t, err)
	assert.Equal(t, "1000003", got.String())
	assert.Equal(t, int64(500_001), used)

	_, used, err = numtheory.SmallestPrimeFactorBigWithin(x, numtheory.FactorBudget{MaxDivisions: 1000})
	assert.ErrorIs(t, err, validate.ErrUnbounded)
	assert.Equal(t, int64(1000), used)

	past := time.Now().Add(-time.Second)
	_, used, err = numtheory.SmallestPrimeFactorBigWithin(x, numtheory.FactorBudget{Deadline: past})
	assert.ErrorIs(t, err, validate.ErrUnbounded)
	assert.Zero(t, used)

	// native path, 1000003 · 1000033
	_, _, err = numtheory.SmallestPrimeFactorBigWithin(big.NewInt(1_000_036_000_099), numtheory.FactorBudget{MaxDivisions: 10})
	assert.ErrorIs(t, err, validate.ErrUnbounded)

	got, used, err = numtheory.SmallestPrimeFactorBigWithin(big.NewInt(43), numtheory.FactorBudget{MaxDivisions: 2})
	require.NoError(t, err)
	assert.Equal(t, "43", got.String())
	assert.Equal(t, int64(2), used)

	_, _, err = numtheory.SmallestPrimeFactorBigWithin(nil, numtheory.FactorBudget{})
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

// TestFactorize_RoundTrip multiplies every factorization back for x in [1, 5000].
func TestFactorize_RoundTrip(t *testing.T) {
	t.Parallel()

	for x := int64(1); x <= 5000; x++ {
		factors, err := numtheory.Factorize(x)
		require.NoError(t, err)
		product := int64(1)
		for i, p := range factors {
			require.Truef(t, numtheory.IsPrime(p), "factor %d of %d is not prime", p, x)
			if i > 0 {
				require.LessOrEqual(t, factors[i-1], p, "factors must be ascending")
			}
			product *= p
		}
		require.Equalf(t, x, product, "product of Factorize(%d)", x)
	}
}

// TestFactorize_Known pins a few factorizations, including a large prime cofactor.
func TestFactorize_Known(t *testing.T) {
	tests := []struct {
		x    int64
		want []int64
	}{
		{1, []int64{}},
		{12, []int64{2, 2, 3}},
		{30, []int64{2, 3, 5}},
		{1024, []int64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
		{2 * 2147483647, []int64{2, 2147483647}},
	}
	for _, tc := range tests {
		got, err := numtheory.Factorize(tc.x)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "Factorize(%d)", tc.x)
	}

	_, err := numtheory.Factorize(0)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

// TestDistinctPrimeFactors deduplicates multiplicity.
func TestDistinctPrimeFactors(t *testing.T) {
	got, err := numtheory.DistinctPrimeFactors(360)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5}, got)

	got, err = numtheory.DistinctPrimeFactors(1)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = numtheory.DistinctPrimeFactors(-4)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

// TestOmega counts factors with and without multiplicity.
func TestOmega(t *testing.T) {
	total, distinct, err := numtheory.Omega(360)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Equal(t, 3, distinct)
}

// TestDivisors covers enumeration, counts and sums.
func TestDivisors(t *testing.T) {
	divs, err := numtheory.Divisors(12)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 6, 12}, divs)

	divs, err = numtheory.Divisors(36)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 6, 9, 12, 18, 36}, divs, "square root appears once")

	sum, err := numtheory.DivisorSum(6)
	require.NoError(t, err)
	assert.Equal(t, int64(12), sum)

	proper, err := numtheory.ProperDivisorSum(28)
	require.NoError(t, err)
	assert.Equal(t, int64(28), proper, "28 is perfect")

	proper, err = numtheory.ProperDivisorSum(1)
	require.NoError(t, err)
	assert.Zero(t, proper)

	count, err := numtheory.DivisorCount(36)
	require.NoError(t, err)
	assert.Equal(t, int64(9), count)

	for _, fn := range []func(int64) (int64, error){
		numtheory.DivisorSum, numtheory.ProperDivisorSum, numtheory.DivisorCount,
	} {
		_, err := fn(0)
		assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	}
}

// TestDivisorSum_MatchesEnumeration compares the pair walk with a naive sum.
func TestDivisorSum_MatchesEnumeration(t *testing.T) {
	for x := int64(1); x <= 500; x++ {
		var naive int64
		for i := int64(1); i <= x; i++ {
			if x%i == 0 {
				naive += i
			}
		}
		got, err := numtheory.DivisorSum(x)
		require.NoError(t, err)
		require.Equalf(t, naive, got, "DivisorSum(%d)", x)
	}
}

// TestDivisorSum_Int64Bound reports σ beyond int64 instead of wrapping.
func TestDivisorSum_Int64Bound(t *testing.T) {
	sum, err := numtheory.DivisorSum(1 << 62)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), sum, "σ(2⁶²) = 2⁶³ − 1")

	_, err = numtheory.DivisorSum(5 << 60)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)

	// σ(5·2⁶⁰) overflows, σ − x does not
	proper, err := numtheory.ProperDivisorSum(5 << 60)
	require.NoError(t, err)
	assert.Equal(t, int64(8_070_450_532_247_928_826), proper)

	_, err = numtheory.ProperDivisorSum(3 << 61)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

// TestPrimeTable memoizes answers without changing them.
func TestPrimeTable(t *testing.T) {
	table := numtheory.NewPrimeTable()
	assert.True(t, table.IsPrime(97))
	assert.False(t, table.IsPrime(91))
	assert.True(t, table.IsPrime(97))
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 1, table.Hits())
}
