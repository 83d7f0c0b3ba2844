// Package validate holds the single argument contract shared by every
// lvseq generator and number-theory primitive.
//
// Two sentinel errors form the whole error vocabulary of the kernel:
//
//   - ErrInvalidArgument - a non-positive term count, or an operand outside
//     the domain of a primitive (factorization of 0, negative divisors, …).
//   - ErrUnbounded       - a search exhausted its caller-imposed iteration or
//     time budget before collecting the requested number of terms.
//
// Callers branch with errors.Is; every package wraps these sentinels with a
// method prefix ("Prime: count must be ≥ 1, got 0") and never returns partial
// output alongside an error.
//
// Usage:
//
//	n, err := validate.Count(n)
//	if err != nil {
//		return nil, err // errors.Is(err, validate.ErrInvalidArgument)
//	}
package validate
