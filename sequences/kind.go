// SPDX-License-Identifier: MIT
// Package: lvseq/sequences

package sequences

// Kind classifies how a sequence is produced.
type Kind int

const (
	// ClosedForm sequences evaluate a formula at each index.
	ClosedForm Kind = iota
	// Recurrence sequences run the fixed-order recurrence engine.
	Recurrence
	// Scanning sequences collect candidates accepted by a predicate.
	Scanning
	// SelfReferential sequences derive each term from their own history.
	SelfReferential
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case ClosedForm:
		return "closed-form"
	case Recurrence:
		return "recurrence"
	case Scanning:
		return "scanning"
	case SelfReferential:
		return "self-referential"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k := ClosedForm; k <= SelfReferential; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}
