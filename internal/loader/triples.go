package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/core/model"
)

// TriplesLoader builds lexical graphs from triples files.
type TriplesLoader struct {
	// IgnoreSelfRelations drops triples relating a word to itself. Undirected
	// graphs reject them regardless.
	IgnoreSelfRelations bool
	Filters             []Filter
}

// NewTriplesLoader returns a loader that ignores self relations.
func NewTriplesLoader(filters ...Filter) *TriplesLoader {
	return &TriplesLoader{IgnoreSelfRelations: true, Filters: filters}
}

// NewPOSLoader returns a loader keeping only the relations of one part of
// speech, named as for ParsePartOfSpeech.
func NewPOSLoader(pos string) (*TriplesLoader, error) {
	p, err := ParsePartOfSpeech(pos)
	if err != nil {
		return nil, err
	}
	if p == POSAll {
		return NewTriplesLoader(), nil
	}
	return NewTriplesLoader(POSFilter{POS: p}), nil
}

type relationAdder interface {
	AddRelation(from, to string, t model.RelationType) (*model.Relation, error)
}

// LoadDirected reads r into a directed graph.
func (l *TriplesLoader) LoadDirected(r io.Reader) (*lexicon.Directed, error) {
	g := lexicon.NewDirected()
	if err := l.load(r, g); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadUndirected reads r into an undirected graph. A pair related more than
// once keeps its first relation.
func (l *TriplesLoader) LoadUndirected(r io.Reader) (*lexicon.Undirected, error) {
	g := lexicon.NewUndirected()
	if err := l.load(r, g); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadFile reads the triples file at path, decoded from encoding, into a
// directed or undirected graph.
func (l *TriplesLoader) LoadFile(path, encoding string, directed bool) (lexicon.Graph, error) {
	r, closeFn, err := openFile(path, encoding)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	if directed {
		return l.LoadDirected(r)
	}
	return l.LoadUndirected(r)
}

func (l *TriplesLoader) load(r io.Reader, g relationAdder) error {
	var loaded, skipped int
	err := scanLines(r, func(n int, line string) error {
		fields := strings.Fields(line)
		if reason := l.reject(fields); reason != "" {
			slog.Debug("loader: skipping triple", "line", n, "reason", reason)
			skipped++
			return nil
		}

		_, err := g.AddRelation(fields[0], fields[2], model.ParseRelationType(fields[1]))
		switch {
		case err == nil:
			loaded++
		case errors.Is(err, lexicon.ErrSelfRelation), errors.Is(err, lexicon.ErrParallelRelation):
			slog.Debug("loader: skipping triple", "line", n, "reason", err.Error())
			skipped++
		default:
			return fmt.Errorf("line %d: %w", n, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read triples: %w", err)
	}

	slog.Info("loader: triples loaded", "relations", loaded, "skipped", skipped)
	return nil
}

// reject returns why a triple is not loaded, or "" to load it.
func (l *TriplesLoader) reject(fields []string) string {
	if len(fields) != 3 {
		return fmt.Sprintf("expected 3 fields, got %d", len(fields))
	}
	if l.IgnoreSelfRelations && fields[0] == fields[2] {
		return "self relation"
	}
	for _, f := range l.Filters {
		if !f.Accept(fields) {
			return "filtered"
		}
	}
	if model.ParseRelationType(fields[1]) == model.RelationUnknown {
		return "unknown relation " + fields[1]
	}
	return ""
}
