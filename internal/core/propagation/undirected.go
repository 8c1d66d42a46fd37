package propagation

import (
	"fmt"
	"log/slog"

	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/core/model"
)

// Undirected propagates polarity over an undirected graph. Seeds are matched
// to vertices by text and their state is copied onto the graph's records, so
// they need not be the graph's own instances; when a text appears more than
// once in seeds the first one wins. It fails with ErrNoSeedsMatched, leaving
// the graph untouched, when no seed is a vertex.
//
// Santos, Gonçalo Oliveira, Ramos & Marques (2012), "A Bootstrapping
// Algorithm for Learning the Polarity of Words", PROPOR 2012.
func Undirected(g *lexicon.Undirected, seeds []*model.Word) (Report, error) {
	bySeed := make(map[string]*model.Word, len(seeds))
	for _, s := range seeds {
		if _, dup := bySeed[s.Text()]; !dup {
			bySeed[s.Text()] = s
		}
	}

	queue := newWorklist(len(bySeed))
	for _, w := range g.Words() {
		if s, ok := bySeed[w.Text()]; ok {
			w.CopyState(s)
			queue.push(w)
		}
	}
	if queue.len() == 0 {
		return Report{}, fmt.Errorf("%w (%d seeds, %d words)", ErrNoSeedsMatched, len(seeds), g.Len())
	}

	report := Report{Seeds: queue.len()}
	visited := make(visitSet, g.Len())

	for queue.len() > 0 {
		current := queue.pop()
		if !g.Contains(current) {
			continue
		}
		report.Dequeued++

		for _, r := range g.Relations(current) {
			neighbor, err := r.Other(current)
			if err != nil {
				return report, err
			}
			if visited.contains(neighbor) {
				continue
			}
			report.Relations++
			push(current, neighbor, r.Type)

			if !queue.contains(neighbor) {
				queue.push(neighbor)
			}
		}
		visited.add(current)
	}

	slog.Debug("propagation: undirected run complete",
		"seeds", report.Seeds, "dequeued", report.Dequeued, "relations", report.Relations)
	return report, nil
}
