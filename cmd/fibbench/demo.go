package main

import (
	"fmt"
	"strings"

	"github.com/medycynka/Fibonacci-Heap/fibheap"
	"github.com/spf13/cobra"
)

func newDemoCommand(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "insert 0..N, extract the minimum and print the consolidated trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}

			return runDemo(a, count)
		},
	}
	cmd.Flags().IntVar(&count, "count", 11, "number of keys to insert, starting at 0")

	return cmd
}

func runDemo(a *app, count int) error {
	h := fibheap.New[int]()
	for i := 0; i < count; i++ {
		h.Insert(i)
	}
	a.log.Debug().Int("size", h.Size()).Int("roots", h.Roots()).Msg("inserted keys")

	minKey, err := h.ExtractMin()
	if err != nil {
		return err
	}
	if err = h.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "extracted min: %d\n", minKey)
	fmt.Fprintf(a.out, "size: %d, roots: %d\n", h.Size(), h.Roots())
	h.Walk(func(n *fibheap.Node[int], depth int) bool {
		mark := ""
		if n.Marked() {
			mark = " *"
		}
		fmt.Fprintf(a.out, "%s%d (degree %d)%s\n", strings.Repeat("  ", depth), n.Key(), n.Degree(), mark)
		return true
	})

	return nil
}
