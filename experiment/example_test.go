// SPDX-License-Identifier: MIT

package experiment_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fpassoc/experiment"
	"github.com/katalvlaran/fpassoc/randsrc"
)

// ExampleRun shows the degenerate case: one pair, randomness pinned to 0,
// so every ordering lands exactly on the offset.
func ExampleRun() {
	rep, err := experiment.Run(2, 5, experiment.WithSource(randsrc.Fixed{}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rep.Expected, rep.Results, rep.Distinct())
	// Output: 5 [5 5 5 5 5] 1
}

// ExampleRun_invalid shows the precondition failure for a non-finite offset.
func ExampleRun_invalid() {
	_, err := experiment.Run(10, math.Inf(1))
	fmt.Println(err)
	// Output: Run: offset=+Inf: experiment: offset must be valid
}
