package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/emberhill/redblack/rbtree"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

// go run ./cmd/rbt dump 4 42 5 7 32 9 46 49
var dumpCmd = &cobra.Command{
	Use:   "dump VALUE...",
	Short: "Insert integer values and render the resulting tree",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseValues(args)
		if err != nil {
			return err
		}

		tr := rbtree.NewOrdered[int]()
		for _, v := range values {
			tr.Insert(v)
		}

		render(tr.Root(), 0)
		return nil
	},
}

// render prints the tree sideways, right subtree on top, red nodes in
// red.
func render(n *rbtree.Node[int], depth int) {
	if n == nil {
		return
	}
	render(n.Right(), depth+1)

	label := strconv.Itoa(n.Value())
	if n.Color() == rbtree.Red {
		label = color.RedString(label)
	}
	fmt.Printf("%s%s\n", strings.Repeat("    ", depth), label)

	render(n.Left(), depth+1)
}
