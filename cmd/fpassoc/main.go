// SPDX-License-Identifier: MIT

// Command fpassoc demonstrates that floating-point addition is not
// associative: it sums the same balanced set of values in several random
// orders and prints every total next to the analytically expected one.
package main

import (
	"os"

	"github.com/katalvlaran/fpassoc/console"
)

func main() {
	if err := newApp(console.Stdio()).rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
