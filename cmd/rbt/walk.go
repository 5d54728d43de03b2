package main

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/emberhill/redblack/rbtree"
)

func init() {
	walkCmd.Flags().String("order", "in", "traversal order: in, pre or post")
	rootCmd.AddCommand(walkCmd)
}

// go run ./cmd/rbt walk --order post 5 15 3 7 12
var walkCmd = &cobra.Command{
	Use:   "walk [--order in|pre|post] VALUE...",
	Short: "Insert integer values and print a traversal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := cmd.Flags().GetString("order")
		if err != nil {
			return err
		}

		values, err := parseValues(args)
		if err != nil {
			return err
		}

		tr := rbtree.NewOrdered[int]()
		for _, v := range values {
			tr.Insert(v)
		}

		var seq iter.Seq[int]
		switch order {
		case "in":
			seq = tr.InOrder()
		case "pre":
			seq = tr.PreOrder()
		case "post":
			seq = tr.PostOrder()
		default:
			return errors.Errorf("unknown order %q", order)
		}

		for v := range seq {
			fmt.Println(v)
		}
		return nil
	},
}
