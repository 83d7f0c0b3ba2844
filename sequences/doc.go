// Package sequences is the lvseq entry point: a registry mapping sequence
// names to generators, plus the closed-form library.
//
// 🚀 What is lvseq?
//
//	A deterministic generator for well-known integer sequences of the OEIS:
//	  • Closed forms:      square, catalan, woodall, stella_octangula, …
//	  • Recurrences:       fibonacci, lucas, pell, perrin, sylvester, …
//	  • Scans:             prime, perfect, circular_prime, sphenic, …
//	  • Self-referential:  van_eck, recaman, look_say, aronson, …
//
// ⚙️ Usage:
//
//	terms, err := sequences.Generate("fibonacci", 8) // 0 1 1 2 3 5 8 13
//
//	// every generator is also exported by name
//	primes, err := sequences.Prime(5) // 2 3 5 7 11
//
//	// searches may be bounded; exhaustion yields validate.ErrUnbounded
//	terms, err = sequences.Generate("perfect", 5,
//		sequences.WithMaxSteps(10_000_000),
//		sequences.WithTimeout(2*time.Second))
//
// Contracts:
//   - len(result) == n for every valid n ≥ 1; n < 1 fails with
//     validate.ErrInvalidArgument before any work is done.
//   - Pure and deterministic: identical arguments yield identical output.
//   - No partial output on error.
//   - The registry is built once and never mutated, so concurrent calls are
//     safe; each call owns its own sequence state.
//
// Terms are *big.Int throughout; factorial-, power- and product-based
// sequences grow without bound.
package sequences
