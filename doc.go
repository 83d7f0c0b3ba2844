// Package lvseq generates well-known integer sequences: the first N terms of
// primes, figurate and combinatorial numbers, linear recurrences and
// self-referential sequences, exactly and deterministically.
//
// 🚀 What is lvseq?
//
//	A small, dependency-light kernel plus a CLI:
//		• Validation: one count rule and two sentinels for every generator
//		• Number theory: primality, factorization, divisor functions
//		• Engines: fixed-order recurrences and predicate-driven scans
//		• Self-referential generators: Van Eck, Recamán, look-and-say,
//		  Baum–Sweet, Aronson, Euclid–Mullin
//		• Registry: 50+ named sequences behind one Generate call
//
// ✨ Why lvseq?
//
//   - Exact – every term is a *big.Int; factorials never overflow
//   - Bounded – open-ended searches accept step and time budgets
//   - Pure – no global state; safe to call from many goroutines
//
// Packages:
//
//	validate/   - count checks, ErrInvalidArgument, ErrUnbounded
//	numtheory/  - IsPrime, Factorize, Divisors, DivisorSum, PrimeTable
//	digits/     - digit sequences, runs, palindromes, rotations
//	recurrence/ - Descriptor + Run, sign alternation
//	scan/       - Scan with predicates for primes, perfect, sphenic, …
//	ordinal/    - English ordinal and cardinal names
//	selfref/    - history-dependent generators
//	sequences/  - the registry and closed forms
//	cmd/lvseq   - command line: gen, list, ordinal, runs, config
//
// Quick example:
//
//	terms, err := sequences.Generate("recaman", 6)
//	// terms: 0 1 3 6 2 7
package lvseq
