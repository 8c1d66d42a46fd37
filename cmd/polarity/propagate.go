package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agenthands/polarity/internal/config"
	"github.com/agenthands/polarity/internal/core"
	"github.com/agenthands/polarity/internal/driver"
	"github.com/agenthands/polarity/internal/loader"
	"github.com/agenthands/polarity/internal/output"
)

// DefaultOutputName is written next to the graph file when no output path is
// given.
const DefaultOutputName = "dic-output.csv"

type propagateOptions struct {
	seeds    string
	graph    string
	output   string
	encoding string
	pos      string
	directed bool
	noHeader bool
	export   bool
}

func newPropagateCmd() *cobra.Command {
	var opts propagateOptions

	cmd := &cobra.Command{
		Use:   "propagate",
		Short: "Run polarity propagation over a triples file and write the lexicon as CSV",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range []string{opts.seeds, opts.graph} {
				if path == "" {
					// reported as a missing required flag
					continue
				}
				if _, err := os.Stat(path); err != nil {
					return fmt.Errorf("cannot read input file %q: %w", path, err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &opts)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return runPropagate(cmd, cfg, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.seeds, "seeds", "", "seed words file (word and signed number per line)")
	f.StringVar(&opts.graph, "graph", "", "triples file (word relation word per line)")
	f.StringVarP(&opts.output, "output", "o", "", "output CSV file (default: "+DefaultOutputName+" next to the graph file)")
	f.StringVar(&opts.encoding, "encoding", "", "charset of input and output files, e.g. ISO-8859-1 (default UTF-8)")
	f.StringVar(&opts.pos, "pos", "", "keep only PAPEL relations of one part of speech: all, noun, verb, adjective, adverb")
	f.BoolVar(&opts.directed, "directed", false, "treat relations as directed")
	f.BoolVar(&opts.noHeader, "no-header", false, "omit the CSV header line")
	f.BoolVar(&opts.export, "export", false, "also write the lexicon to Memgraph")
	_ = cmd.MarkFlagRequired("seeds")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// loadConfig layers the configuration file, environment and command line
// flags, in that order.
func loadConfig(cmd *cobra.Command, opts *propagateOptions) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	f := cmd.Flags()
	if f.Changed("directed") {
		cfg.Propagation.Mode = config.ModeUndirected
		if opts.directed {
			cfg.Propagation.Mode = config.ModeDirected
		}
	}
	if f.Changed("encoding") {
		cfg.Input.Encoding = opts.encoding
		cfg.Output.Encoding = opts.encoding
	}
	if f.Changed("pos") {
		cfg.Input.PartOfSpeech = opts.pos
	}
	if f.Changed("no-header") {
		cfg.Output.Header = !opts.noHeader
	}
	if f.Changed("output") {
		cfg.Output.Path = opts.output
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = filepath.Join(filepath.Dir(opts.graph), DefaultOutputName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPropagate(cmd *cobra.Command, cfg *config.Config, opts *propagateOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	l, err := loader.NewPOSLoader(cfg.Input.PartOfSpeech)
	if err != nil {
		return err
	}
	l.IgnoreSelfRelations = cfg.Input.IgnoreSelfRelations

	g, err := l.LoadFile(opts.graph, cfg.Input.Encoding, cfg.Directed())
	if err != nil {
		return err
	}
	seeds, err := loader.LoadSeedsFile(opts.seeds, cfg.Input.Encoding)
	if err != nil {
		return err
	}

	p := core.NewPropagator(nil)
	p.BatchSize = cfg.Memgraph.BatchSize
	if opts.export {
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			return err
		}
		defer func() {
			if err := d.Close(ctx); err != nil {
				slog.Warn("polarity: failed to close driver", "error", err)
			}
		}()
		if err := d.BuildIndices(ctx); err != nil {
			return err
		}
		p.Driver = d
	}

	res, err := p.Run(ctx, g, seeds)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Stats)

	w := &output.CSVWriter{Header: cfg.Output.Header, Comma: cfg.Comma(), UseCRLF: cfg.Output.CRLF}
	if err := w.WriteFile(cfg.Output.Path, cfg.Output.Encoding, g); err != nil {
		return err
	}
	if abs, err := filepath.Abs(cfg.Output.Path); err == nil {
		fmt.Fprintf(out, "Output file: %s\n", abs)
	}

	if opts.export {
		if err := p.Export(ctx, res); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported run %s\n", res.RunID)
	}
	return nil
}
