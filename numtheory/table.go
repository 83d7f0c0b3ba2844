// SPDX-License-Identifier: MIT
// Package: lvseq/numtheory
//
// table.go - PrimeTable, an opt-in primality memo.
//
// Contract:
//   • A PrimeTable is created and owned by one caller (one generator call);
//     the package never keeps one globally.
//   • Not safe for concurrent use. Give each goroutine its own table.

package numtheory

// PrimeTable memoizes IsPrime results. The zero value is not usable; call
// NewPrimeTable.
type PrimeTable struct {
	known map[int64]bool
	hits  int
}

// NewPrimeTable returns an empty memo.
func NewPrimeTable() *PrimeTable {
	return &PrimeTable{known: make(map[int64]bool)}
}

// IsPrime answers from the memo when possible and records fresh answers.
func (t *PrimeTable) IsPrime(x int64) bool {
	if v, ok := t.known[x]; ok {
		t.hits++
		return v
	}
	v := IsPrime(x)
	t.known[x] = v

	return v
}

// Len returns the number of memoized values.
func (t *PrimeTable) Len() int { return len(t.known) }

// Hits returns how many lookups were served from the memo.
func (t *PrimeTable) Hits() int { return t.hits }
