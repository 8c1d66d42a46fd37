// Package core runs polarity propagation end to end: it dispatches a lexical
// graph to the matching engine, summarises the outcome and optionally writes
// the resulting lexicon to a graph database.
package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agenthands/polarity/internal/core/components"
	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/core/model"
	"github.com/agenthands/polarity/internal/core/propagation"
	"github.com/agenthands/polarity/internal/core/stats"
	"github.com/agenthands/polarity/internal/driver"
	"github.com/agenthands/polarity/internal/loader"
	"github.com/agenthands/polarity/internal/metrics"
)

var (
	ErrUnknownWord = errors.New("polarity: unknown word")
	ErrNoDriver    = errors.New("polarity: no graph driver configured")
)

const (
	ModeDirected   = "directed"
	ModeUndirected = "undirected"

	DefaultBatchSize = 500
)

// Result is the outcome of one propagation run. Graph holds the words with
// their final counters.
type Result struct {
	RunID     string             `json:"run_id"`
	Mode      string             `json:"mode"`
	CreatedAt time.Time          `json:"created_at"`
	Elapsed   time.Duration      `json:"elapsed"`
	Report    propagation.Report `json:"report"`
	Stats     stats.Stats        `json:"stats"`

	// Components counts the connected components of the graph, Unreached
	// those without any word touched by the run.
	Components int `json:"components"`
	Unreached  int `json:"unreached_components"`

	Graph lexicon.Graph `json:"-"`
}

// Word returns the final state of the word with the given text.
func (r *Result) Word(text string) (*model.Word, error) {
	w, ok := r.Graph.Word(text)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, text)
	}
	return w, nil
}

type Propagator struct {
	Driver    driver.GraphDriver
	BatchSize int
}

// NewPropagator returns a Propagator exporting through d. d may be nil when
// no export is needed.
func NewPropagator(d driver.GraphDriver) *Propagator {
	return &Propagator{Driver: d, BatchSize: DefaultBatchSize}
}

// Mode names the propagation variant used for g.
func Mode(g lexicon.Graph) string {
	if g.Directed() {
		return ModeDirected
	}
	return ModeUndirected
}

// Run propagates the polarity of seeds over g. For a directed graph the seeds
// are first bound to the graph's own records; seeds absent from g are
// dropped. A run in which no seed reaches g fails with
// propagation.ErrNoSeedsMatched.
func (p *Propagator) Run(ctx context.Context, g lexicon.Graph, seeds []*model.Word) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:     uuid.New().String(),
		Mode:      Mode(g),
		CreatedAt: time.Now().UTC(),
		Graph:     g,
	}

	start := time.Now()
	var err error
	switch graph := g.(type) {
	case *lexicon.Directed:
		attached := loader.Attach(graph, seeds)
		if len(attached) == 0 {
			err = propagation.ErrNoSeedsMatched
			break
		}
		res.Report, err = propagation.Directed(graph, attached)
	case *lexicon.Undirected:
		res.Report, err = propagation.Undirected(graph, seeds)
	default:
		err = fmt.Errorf("unsupported graph type %T", g)
	}
	res.Elapsed = time.Since(start)

	if err != nil {
		result := metrics.ResultError
		if errors.Is(err, propagation.ErrNoSeedsMatched) {
			result = metrics.ResultNoSeeds
		}
		metrics.ObserveRun(res.Mode, result, res.Elapsed, 0)
		return nil, fmt.Errorf("failed to propagate polarity: %w", err)
	}

	res.Stats = stats.Compute(g)
	cs := components.Detect(g)
	res.Components, res.Unreached = len(cs), components.Unreached(cs)
	metrics.ObserveRun(res.Mode, metrics.ResultSuccess, res.Elapsed, res.Report.Dequeued)
	metrics.SetLastRun(res.Stats)

	slog.Info("core: propagation complete",
		"run_id", res.RunID,
		"mode", res.Mode,
		"words", res.Stats.Total,
		"seeds", res.Report.Seeds,
		"dequeued", res.Report.Dequeued,
		"unreached_components", res.Unreached,
		"elapsed", res.Elapsed)
	return res, nil
}

// Export writes the run, its words and its relations to the graph database.
func (p *Propagator) Export(ctx context.Context, res *Result) error {
	if p.Driver == nil {
		return ErrNoDriver
	}

	_, err := p.Driver.ExecuteQuery(ctx, driver.SaveRunQuery, map[string]interface{}{
		"run_id":     res.RunID,
		"mode":       res.Mode,
		"created_at": res.CreatedAt,
		"seeds":      res.Stats.Seeds,
		"positive":   res.Stats.Positive,
		"negative":   res.Stats.Negative,
		"neutral":    res.Stats.Neutral,
		"ambiguous":  res.Stats.Ambiguous,
		"not_set":    res.Stats.NotSet,
		"total":      res.Stats.Total,
	})
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", res.RunID, err)
	}

	words := res.Graph.Words()
	rows := make([]interface{}, 0, len(words))
	for _, w := range words {
		rows = append(rows, wordParams(w))
	}
	if err := p.saveBatches(ctx, driver.SaveWordsQuery, "words", res.RunID, rows); err != nil {
		return err
	}
	metrics.ExportedWords.Add(float64(len(rows)))

	rels := make([]interface{}, 0, res.Graph.RelationCount())
	seen := make(map[int64]bool, res.Graph.RelationCount())
	for _, w := range words {
		for _, r := range res.Graph.Relations(w) {
			if seen[r.ID()] {
				continue
			}
			seen[r.ID()] = true
			rels = append(rels, map[string]interface{}{
				"uid":  r.ID(),
				"from": r.F.Text(),
				"to":   r.T.Text(),
				"type": r.Type.String(),
			})
		}
	}
	if err := p.saveBatches(ctx, driver.SaveRelationsQuery, "relations", res.RunID, rels); err != nil {
		return err
	}

	slog.Info("core: lexicon exported", "run_id", res.RunID, "words", len(words), "relations", len(rels))
	return nil
}

func (p *Propagator) saveBatches(ctx context.Context, query, key, runID string, rows []interface{}) error {
	size := p.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		_, err := p.Driver.ExecuteQuery(ctx, query, map[string]interface{}{
			"run_id": runID,
			key:      rows[start:end],
		})
		if err != nil {
			return fmt.Errorf("failed to save %s %d-%d: %w", key, start, end, err)
		}
	}
	return nil
}

// LoadWord reads an exported word back from the graph database.
func (p *Propagator) LoadWord(ctx context.Context, runID, text string) (map[string]any, error) {
	if p.Driver == nil {
		return nil, ErrNoDriver
	}

	result, err := p.Driver.ExecuteQuery(ctx, driver.GetWordQuery, map[string]interface{}{
		"run_id": runID,
		"text":   text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load word %q: %w", text, err)
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, text)
	}
	return result.Records[0].AsMap(), nil
}

func wordParams(w *model.Word) map[string]interface{} {
	return map[string]interface{}{
		"text":      w.Text(),
		"polarity":  w.Polarity().String(),
		"positive":  w.Positive(),
		"negative":  w.Negative(),
		"neutral":   w.Neutral(),
		"iteration": w.Iteration(),
		"seed":      w.IsSeed(),
	}
}
