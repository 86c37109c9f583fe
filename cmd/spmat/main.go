// SPDX-License-Identifier: MIT

// Command spmat adds, subtracts and multiplies sparse integer matrices stored
// in the rows=/cols=/(r, c, v) text format.
package main

import (
	"os"

	"github.com/katalvlaran/spmat/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
