package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthands/polarity/internal/core"
	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/core/model"
	"github.com/agenthands/polarity/internal/core/sample"
)

func newExampleCmd() *cobra.Command {
	var relations bool

	cmd := &cobra.Command{
		Use:       "example directed|undirected",
		Short:     "Run propagation over a small built-in graph and print every word",
		ValidArgs: []string{core.ModeDirected, core.ModeUndirected},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				g     lexicon.Graph
				seeds []*model.Word
			)
			if args[0] == core.ModeDirected {
				g, seeds = sample.TinyDirected()
			} else {
				g, seeds = sample.TinyUndirected()
			}

			out := cmd.OutOrStdout()
			if relations {
				printRelations(cmd, g)
			}

			res, err := core.NewPropagator(nil).Run(cmd.Context(), g, seeds)
			if err != nil {
				return err
			}
			for _, w := range g.Words() {
				fmt.Fprintln(out, w)
			}
			fmt.Fprintln(out, res.Stats)
			return nil
		},
	}
	cmd.Flags().BoolVar(&relations, "relations", false, "print the graph relations before propagating")
	return cmd
}

func printRelations(cmd *cobra.Command, g lexicon.Graph) {
	out := cmd.OutOrStdout()
	for _, w := range g.Words() {
		for _, r := range g.Relations(w) {
			other, err := r.Other(w)
			if err != nil {
				continue
			}
			fmt.Fprintf(out, "%s %s %s\n", w.Text(), r.Type, other.Text())
		}
	}
}
