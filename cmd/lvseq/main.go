// SPDX-License-Identifier: MIT

// Command lvseq prints well-known integer sequences.
package main

import "github.com/katalvlaran/lvseq/internal/cli"

func main() {
	cli.Execute()
}
