// Package propagation spreads the polarity of seed words over a lexical
// graph. Both variants walk the graph breadth first from the seeds, process
// every reached word once and only ever touch counters and iterations: the
// graph topology is never modified during a run.
//
// The two variants differ on purpose. The directed walk honours every
// relation, including one pointing back at a word that was already
// processed. The undirected walk never pushes polarity into a processed word.
package propagation

import (
	"errors"

	"github.com/agenthands/polarity/internal/core/model"
)

var (
	// ErrNoSeedsMatched is returned when none of the seed words is a vertex of
	// the graph.
	ErrNoSeedsMatched = errors.New("polarity: no seed word found in the graph")

	// ErrSeedNotInGraph is returned by the directed walk for a seed that is
	// not one of the graph's own word records.
	ErrSeedNotInGraph = errors.New("polarity: seed word is not a vertex of the graph")
)

// Report describes the work done by a run.
type Report struct {
	Seeds     int `json:"seeds"`
	Dequeued  int `json:"dequeued"`
	Relations int `json:"relations"`
}

// push applies one relation from current to neighbor. The neighbour gets its
// distance on first contact only, and a counter matching (synonym) or
// inverting (antonym) the dominant polarity of current. Ambiguous and unset
// words push nothing.
func push(current, neighbor *model.Word, t model.RelationType) {
	if !neighbor.IterationSet() {
		neighbor.SetIteration(current.Iteration() + 1)
	}

	switch t {
	case model.RelationSynonym:
		switch current.Polarity() {
		case model.PolarityPositive:
			neighbor.IncPositive()
		case model.PolarityNegative:
			neighbor.IncNegative()
		case model.PolarityNeutral:
			neighbor.IncNeutral()
		}
	case model.RelationAntonym:
		switch current.Polarity() {
		case model.PolarityPositive:
			neighbor.IncNegative()
		case model.PolarityNegative:
			neighbor.IncPositive()
		case model.PolarityNeutral:
			neighbor.IncNeutral()
		}
	}
}
