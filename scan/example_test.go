// SPDX-License-Identifier: MIT
package scan_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvseq/scan"
	"github.com/katalvlaran/lvseq/validate"
)

// ExampleScan collects the first Sophie Germain primes.
func ExampleScan() {
	terms, err := scan.Scan(scan.SophieGermain, 2, 6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(terms)
	// Output: [2 3 5 11 23 29]
}

// ExampleWithMaxSteps shows a budget turning a long search into an error.
func ExampleWithMaxSteps() {
	_, err := scan.Scan(scan.Perfect, 1, 4, scan.WithMaxSteps(1000))
	fmt.Println(errors.Is(err, validate.ErrUnbounded))
	// Output: true
}
