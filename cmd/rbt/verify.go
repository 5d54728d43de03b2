package main

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emberhill/redblack/rbtree"
)

func init() {
	verifyCmd.Flags().Int("count", 1000, "number of random values to insert")
	verifyCmd.Flags().Int64("seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.AddCommand(verifyCmd)
}

// go run ./cmd/rbt verify --count 100000
var verifyCmd = &cobra.Command{
	Use:   "verify [--count N] [--seed S]",
	Short: "Insert random values, checking every invariant after each step",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		log.WithFields(log.Fields{
			"count": count,
			"seed":  seed,
		}).Info("inserting random values")

		r := rand.New(rand.NewSource(seed))
		tr := rbtree.NewOrdered[int]()
		for i := 0; i < count; i++ {
			tr.Insert(r.Intn(count))
			if err := tr.Verify(); err != nil {
				return errors.Wrapf(err, "after %d insertions", i+1)
			}
		}

		log.WithField("size", tr.Len()).Info("all invariants hold")
		return nil
	},
}
