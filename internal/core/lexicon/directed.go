package lexicon

import (
	"fmt"

	"github.com/agenthands/polarity/internal/core/model"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
)

// Directed is a directed multigraph of words. The same ordered pair may be
// related more than once and a word may be related to itself.
type Directed struct {
	words
	g *multi.DirectedGraph
}

func NewDirected() *Directed {
	return &Directed{words: newWords(), g: multi.NewDirectedGraph()}
}

func (d *Directed) Directed() bool { return true }

// AddWord returns the vertex for text, adding it if needed.
func (d *Directed) AddWord(text string) *model.Word {
	w, created := d.lookup(text)
	if created {
		d.g.AddNode(w)
	}
	return w
}

// AddRelation relates from to to, creating missing vertices.
func (d *Directed) AddRelation(from, to string, t model.RelationType) (*model.Relation, error) {
	if t == model.RelationUnknown {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownRelation, from, to)
	}
	r := d.newRelation(d.AddWord(from), d.AddWord(to), t)
	d.g.SetLine(r)
	return r, nil
}

func (d *Directed) Relations(w *model.Word) []*model.Relation {
	if !d.Contains(w) {
		return nil
	}
	var out []*model.Relation
	for _, n := range graph.NodesOf(d.g.From(w.ID())) {
		for _, l := range graph.LinesOf(d.g.Lines(w.ID(), n.ID())) {
			out = append(out, d.relations[l.ID()])
		}
	}
	return sortRelations(out)
}
