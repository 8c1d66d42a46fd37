package propagation

import (
	"fmt"
	"log/slog"

	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/core/model"
)

// Directed propagates polarity over a directed graph following outgoing
// relations only. Seeds must be the graph's own word records, already marked
// with one of the seeding operations. Duplicate seeds are processed once.
//
// Santos, Ramos & Marques (2011), "Determining the Polarity of Words through
// a Common Online Dictionary", EPIA 2011.
func Directed(g *lexicon.Directed, seeds []*model.Word) (Report, error) {
	for _, s := range seeds {
		if !g.Contains(s) {
			return Report{}, fmt.Errorf("%w: %q", ErrSeedNotInGraph, s.Text())
		}
	}

	queue := newWorklist(len(seeds))
	for _, s := range seeds {
		queue.push(s)
	}
	report := Report{Seeds: queue.len()}
	visited := make(visitSet, g.Len())

	for queue.len() > 0 {
		current := queue.pop()
		report.Dequeued++

		for _, r := range g.Relations(current) {
			neighbor := r.T
			report.Relations++
			push(current, neighbor, r.Type)

			// A self relation must not queue the word being processed again.
			if neighbor != current && !queue.contains(neighbor) && !visited.contains(neighbor) {
				queue.push(neighbor)
			}
		}
		visited.add(current)
	}

	slog.Debug("propagation: directed run complete",
		"seeds", report.Seeds, "dequeued", report.Dequeued, "relations", report.Relations)
	return report, nil
}
