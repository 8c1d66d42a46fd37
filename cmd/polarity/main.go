package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "polarity",
		Short: "Propagate sentiment polarity from seed words over a synonym/antonym graph",
		Long: `polarity builds a sentiment lexicon from a handful of seed words with a
known polarity and a graph of synonym and antonym relations between words.

Examples:
  polarity propagate --seeds seeds.txt --graph papel.txt
  polarity propagate --seeds seeds.txt --graph triples.txt --directed
  polarity example undirected`,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")
	root.AddCommand(newPropagateCmd(), newExampleCmd())
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
