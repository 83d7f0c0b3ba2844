// Package scan implements the scanning engine: advance a candidate counter,
// test a predicate, collect accepted candidates until n are found.
//
// 🚀 What does it cover?
//
//	Every "smallest numbers satisfying P" sequence in lvseq is Scan with a
//	different Predicate: primes, composites, palindromes, perfect numbers,
//	circular primes, sphenic numbers and the rest.
//
// ⚙️ Usage:
//
//	primes, err := scan.Scan(scan.Prime, 2, 5) // [2 3 5 7 11]
//
//	// hardened: give up after a million candidates or one second
//	terms, err := scan.Scan(pred, 1, n,
//		scan.WithMaxSteps(1_000_000),
//		scan.WithTimeout(time.Second))
//	if errors.Is(err, validate.ErrUnbounded) { … }
//
// Termination:
//
//	Without a budget the loop is unbounded. It terminates only when the
//	predicate holds infinitely often, which each sequence inherits from its
//	mathematical definition (infinitude of primes, …); the engine does not
//	verify it. A budget turns a would-be hang into ErrUnbounded.
//
// Predicates receive the accepted-so-far history, so permutation-class tests
// (circular primes) can avoid emitting two members of the same class.
package scan
