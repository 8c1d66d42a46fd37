package model

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph"
)

// ErrInconsistentRelation is returned when a relation is asked about a word
// that is not one of its endpoints.
var ErrInconsistentRelation = errors.New("polarity: word is not an endpoint of relation")

// RelationType is the lexical relation carried by an edge.
type RelationType int

const (
	RelationUnknown RelationType = iota
	RelationSynonym
	RelationAntonym
)

func (t RelationType) String() string {
	switch t {
	case RelationSynonym:
		return "SYNONYM"
	case RelationAntonym:
		return "ANTONYM"
	default:
		return "UNKNOWN"
	}
}

func (t RelationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseRelationType maps a relation token from a triples file to its type.
// Tokens starting with "syn" or "sin" are synonyms, "ant" antonyms, case
// insensitive. Anything else is unknown.
func ParseRelationType(token string) RelationType {
	token = strings.ToLower(token)
	switch {
	case strings.HasPrefix(token, "syn"), strings.HasPrefix(token, "sin"):
		return RelationSynonym
	case strings.HasPrefix(token, "ant"):
		return RelationAntonym
	default:
		return RelationUnknown
	}
}

// Relation is a typed edge between two words. It satisfies both graph.Line,
// for multigraphs where parallel relations are told apart by ID, and
// graph.Edge, for simple graphs.
type Relation struct {
	UID  int64
	F, T *Word
	Type RelationType
}

func NewRelation(id int64, from, to *Word, t RelationType) *Relation {
	return &Relation{UID: id, F: from, T: to, Type: t}
}

func (r *Relation) From() graph.Node { return r.F }
func (r *Relation) To() graph.Node   { return r.T }
func (r *Relation) ID() int64        { return r.UID }

func (r *Relation) ReversedLine() graph.Line {
	return &Relation{UID: r.UID, F: r.T, T: r.F, Type: r.Type}
}

func (r *Relation) ReversedEdge() graph.Edge {
	return &Relation{UID: r.UID, F: r.T, T: r.F, Type: r.Type}
}

// Other returns the endpoint opposite to w. For a self relation that is w
// itself.
func (r *Relation) Other(w *Word) (*Word, error) {
	switch w.Text() {
	case r.F.Text():
		return r.T, nil
	case r.T.Text():
		return r.F, nil
	}
	return nil, fmt.Errorf("%w: %s %s %s (word %q)", ErrInconsistentRelation, r.F.Text(), r.Type, r.T.Text(), w.Text())
}

// Self returns the relation's own instance of the word identified by w.
func (r *Relation) Self(w *Word) (*Word, error) {
	switch w.Text() {
	case r.F.Text():
		return r.F, nil
	case r.T.Text():
		return r.T, nil
	}
	return nil, fmt.Errorf("%w: %s %s %s (word %q)", ErrInconsistentRelation, r.F.Text(), r.Type, r.T.Text(), w.Text())
}

func (r *Relation) String() string {
	return fmt.Sprintf("%s %s %s", r.F.Text(), r.Type, r.T.Text())
}
