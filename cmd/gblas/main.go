// SPDX-License-Identifier: MIT

// Command gblas generates a sparse graph and runs the semiring solvers on it.
//
//	gblas sssp --vertices 500 --probability 0.01 --algorithm delta --delta 2 --verify
//	gblas mis --vertices 200 --probability 0.05 --seed 7
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gblas:", err)
		os.Exit(1)
	}
}
