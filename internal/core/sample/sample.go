// Package sample builds the small demonstration graphs used by the
// "example" command and by tests.
package sample

import (
	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/core/model"
)

type triple struct {
	from, to string
	rel      model.RelationType
}

const (
	syn = model.RelationSynonym
	ant = model.RelationAntonym
)

// TinyDirected returns a nine word directed graph with A seeded positive and
// B seeded negative. The seeds are the graph's own records.
func TinyDirected() (*lexicon.Directed, []*model.Word) {
	g := lexicon.NewDirected()
	for _, text := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"} {
		g.AddWord(text)
	}

	for _, t := range []triple{
		{"A", "C", syn}, {"A", "D", syn},
		{"B", "D", syn}, {"B", "E", syn},
		{"C", "F", syn}, {"D", "F", syn},
		{"E", "G", syn}, {"E", "H", syn},
		{"F", "I", ant}, {"F", "G", syn},
		{"H", "E", syn},
	} {
		// Relation types are known, so this cannot fail.
		_, _ = g.AddRelation(t.from, t.to, t.rel)
	}

	a, _ := g.Word("A")
	b, _ := g.Word("B")
	return g, []*model.Word{a.SeedPositive(), b.SeedNegative()}
}

// TinyUndirected returns a thirteen word undirected graph and a seed list of
// detached words: "0" positive, "1" negative and "2" neutral. Words 11 and 12
// form a component no seed reaches.
func TinyUndirected() (*lexicon.Undirected, []*model.Word) {
	g := lexicon.NewUndirected()
	for _, text := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"} {
		g.AddWord(text)
	}

	for _, t := range []triple{
		{"0", "5", syn}, {"0", "6", syn}, {"0", "7", syn}, {"0", "8", syn},
		{"5", "1", syn}, {"7", "1", syn}, {"7", "3", syn},
		{"8", "9", syn}, {"8", "10", syn}, {"9", "10", syn},
		{"1", "4", syn}, {"1", "7", syn}, {"7", "3", syn},
		{"3", "2", syn}, {"11", "12", syn},
	} {
		// "1 7" and the second "7 3" repeat a pair and are rejected.
		_, _ = g.AddRelation(t.from, t.to, t.rel)
	}

	seeds := []*model.Word{
		model.NewWord("0").SeedPositive(),
		model.NewWord("1").SeedNegative(),
		model.NewWord("2").SeedNeutral(),
	}
	return g, seeds
}
