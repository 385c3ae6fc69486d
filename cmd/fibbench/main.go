// Command fibbench exercises the fibheap package: it prints a small heap,
// benchmarks bulk operations and runs the graph algorithms built on it.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
