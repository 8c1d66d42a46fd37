// Package lexicon holds the lexical graphs that polarity is propagated over:
// a directed multigraph that allows self relations, and an undirected simple
// graph. Both keep exactly one Word record per text, so relations added for
// a text that is already a vertex reuse the existing record.
package lexicon

import (
	"errors"
	"sort"

	"github.com/agenthands/polarity/internal/core/model"
)

var (
	// ErrUnknownRelation is returned when adding a relation of unknown type.
	ErrUnknownRelation = errors.New("polarity: unknown relation type")

	// ErrSelfRelation is returned by undirected graphs for a word related to itself.
	ErrSelfRelation = errors.New("polarity: self relation not allowed")

	// ErrParallelRelation is returned by undirected graphs when the pair is
	// already related.
	ErrParallelRelation = errors.New("polarity: words already related")
)

// Graph is the read side of a lexical graph used by propagation, statistics
// and output.
type Graph interface {
	Directed() bool

	// Words returns the vertices in insertion order.
	Words() []*model.Word
	Word(text string) (*model.Word, bool)
	Contains(w *model.Word) bool
	ContainsRelation(r *model.Relation) bool

	// Relations returns the outgoing relations of w in a directed graph and
	// the incident relations of w in an undirected one, in insertion order.
	Relations(w *model.Word) []*model.Relation

	Len() int
	RelationCount() int
}

// words is the arena shared by both topologies. Word IDs are arena indexes
// and relation IDs are handed out in insertion order.
type words struct {
	list      []*model.Word
	byText    map[string]*model.Word
	relations map[int64]*model.Relation
	nextID    int64
}

func newWords() words {
	return words{
		byText:    make(map[string]*model.Word),
		relations: make(map[int64]*model.Relation),
	}
}

// lookup returns the record for text, creating it when it does not exist.
func (ws *words) lookup(text string) (*model.Word, bool) {
	if w, ok := ws.byText[text]; ok {
		return w, false
	}
	w := model.NewWord(text)
	w.Bind(int64(len(ws.list)))
	ws.list = append(ws.list, w)
	ws.byText[text] = w
	return w, true
}

func (ws *words) newRelation(from, to *model.Word, t model.RelationType) *model.Relation {
	r := model.NewRelation(ws.nextID, from, to, t)
	ws.nextID++
	ws.relations[r.UID] = r
	return r
}

func (ws *words) Words() []*model.Word {
	out := make([]*model.Word, len(ws.list))
	copy(out, ws.list)
	return out
}

func (ws *words) Word(text string) (*model.Word, bool) {
	w, ok := ws.byText[text]
	return w, ok
}

func (ws *words) Contains(w *model.Word) bool {
	if w == nil {
		return false
	}
	return ws.byText[w.Text()] == w
}

func (ws *words) ContainsRelation(r *model.Relation) bool {
	if r == nil {
		return false
	}
	return ws.relations[r.UID] == r
}

func (ws *words) Len() int           { return len(ws.list) }
func (ws *words) RelationCount() int { return len(ws.relations) }

func sortRelations(rels []*model.Relation) []*model.Relation {
	sort.Slice(rels, func(i, j int) bool { return rels[i].UID < rels[j].UID })
	return rels
}
