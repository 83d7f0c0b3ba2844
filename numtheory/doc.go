// Package numtheory implements the number-theory kernel shared by the lvseq
// generators: primality, smallest prime factor, factorization and divisor
// enumeration.
//
// 🚀 What is inside?
//
//	Everything here is plain trial division. Exact results, few allocations:
//	  • IsPrime / SmallestPrimeFactor / SmallestPrimeFactorBig(Within)
//	  • Factorize (with multiplicity) / DistinctPrimeFactors
//	  • Divisors / DivisorCount / DivisorSum / ProperDivisorSum
//	  • PrimeTable - an explicit, caller-owned primality memo
//
// ✨ Contracts:
//   - Pure functions, no package-level mutable state.
//   - Operands < 1 are rejected with validate.ErrInvalidArgument
//     (IsPrime is total and simply reports false).
//   - The product of Factorize(x) is exactly x.
//
// Performance:
//
//   - IsPrime, SmallestPrimeFactor: O(√x)
//   - Factorize: O(√x) amortized over all factors
//   - Divisors and sums: O(√x) via divisor pairs
//
// Trial division bounds the feasible length of primality-heavy sequences
// (circular primes, sphenic numbers). It is not meant for cryptographic-size
// inputs.
package numtheory
