// Package recurrence drives every fixed-order recurrence sequence in lvseq
// from a single engine.
//
// A Descriptor names the initial terms, the arity k (how many trailing terms
// feed the next one) and a combination rule. Run appends Combine(last k terms)
// until n terms exist; when n falls inside the initial window the prefix is
// returned verbatim and no step executes.
//
// ⚙️ Usage:
//
//	fib := recurrence.Linear(recurrence.Ints(0, 1), 1, 1) // a(n) = a(n-2) + a(n-1)
//	terms, err := recurrence.Run(fib, 8)                  // 0 1 1 2 3 5 8 13
//
// Negative-index variants (NegaFibonacci, NegaLucas, …) are a post-hoc sign
// transform of the positive-index result: see Alternate.
//
// Terms are *big.Int; the log is append-only and every term is a distinct
// allocation, so callers may keep or mutate the returned values freely.
package recurrence
