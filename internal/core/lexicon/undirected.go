package lexicon

import (
	"fmt"

	"github.com/agenthands/polarity/internal/core/model"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Undirected is a simple undirected graph of words: at most one relation per
// pair and no self relations.
type Undirected struct {
	words
	g *simple.UndirectedGraph
}

func NewUndirected() *Undirected {
	return &Undirected{words: newWords(), g: simple.NewUndirectedGraph()}
}

func (u *Undirected) Directed() bool { return false }

// AddWord returns the vertex for text, adding it if needed.
func (u *Undirected) AddWord(text string) *model.Word {
	w, created := u.lookup(text)
	if created {
		u.g.AddNode(w)
	}
	return w
}

// AddRelation relates a and b. The pair is unordered; the relation keeps the
// order it was given in.
func (u *Undirected) AddRelation(a, b string, t model.RelationType) (*model.Relation, error) {
	if t == model.RelationUnknown {
		return nil, fmt.Errorf("%w: %s - %s", ErrUnknownRelation, a, b)
	}
	if a == b {
		return nil, fmt.Errorf("%w: %s", ErrSelfRelation, a)
	}
	wa, wb := u.AddWord(a), u.AddWord(b)
	if u.g.HasEdgeBetween(wa.ID(), wb.ID()) {
		return nil, fmt.Errorf("%w: %s - %s", ErrParallelRelation, a, b)
	}
	r := u.newRelation(wa, wb, t)
	u.g.SetEdge(r)
	return r, nil
}

func (u *Undirected) Relations(w *model.Word) []*model.Relation {
	if !u.Contains(w) {
		return nil
	}
	var out []*model.Relation
	for _, n := range graph.NodesOf(u.g.From(w.ID())) {
		e := u.g.Edge(w.ID(), n.ID())
		if e == nil {
			continue
		}
		// Edge may hand back a reversed copy; the arena holds the original.
		out = append(out, u.relations[e.(*model.Relation).ID()])
	}
	return sortRelations(out)
}
