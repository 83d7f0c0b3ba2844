// Package selfref holds the self-referential generators: sequences whose next
// term is computed from their own growing output rather than from a fixed
// recurrence window or a stateless predicate.
//
//   - VanEck       - distance back to the previous occurrence of the last term.
//   - Recaman      - signed walk that avoids revisiting values.
//   - LookSay      - describe-then-encode of the previous term's digits.
//   - BaumSweet    - 1 iff the binary expansion has no odd-length zero block.
//   - Aronson      - positions of the letter "t" in a sentence that keeps
//     spelling out those positions.
//   - EuclidMullin - smallest prime factor of (product of all prior terms)+1.
//
// Each generator owns its state for the duration of one call; nothing is
// shared between calls. They fail only through the shared count validation,
// or with validate.ErrUnbounded when a search budget runs out.
package selfref
