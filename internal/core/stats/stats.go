package stats

import (
	"fmt"
	"strings"

	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/core/model"
)

// Stats counts the words of a graph by final polarity. Every word lands in
// exactly one of the five polarity counters, so their sum is Total.
type Stats struct {
	Positive  int `json:"positive"`
	Negative  int `json:"negative"`
	Neutral   int `json:"neutral"`
	Ambiguous int `json:"ambiguous"`
	NotSet    int `json:"not_set"`
	Total     int `json:"total"`
	Seeds     int `json:"seeds"`
}

// Compute classifies every word of g. It only reads the graph.
func Compute(g lexicon.Graph) Stats {
	var s Stats
	for _, w := range g.Words() {
		s.Total++
		switch w.Polarity() {
		case model.PolarityPositive:
			s.Positive++
		case model.PolarityNegative:
			s.Negative++
		case model.PolarityNeutral:
			s.Neutral++
		case model.PolarityAmbiguous:
			s.Ambiguous++
		default:
			s.NotSet++
		}
		if w.IsSeed() {
			s.Seeds++
		}
	}
	return s
}

// Checksum is the sum of the polarity counters. It equals Total.
func (s Stats) Checksum() int {
	return s.Positive + s.Negative + s.Neutral + s.Ambiguous + s.NotSet
}

// ByPolarity returns the counter for p.
func (s Stats) ByPolarity(p model.Polarity) int {
	switch p {
	case model.PolarityPositive:
		return s.Positive
	case model.PolarityNegative:
		return s.Negative
	case model.PolarityNeutral:
		return s.Neutral
	case model.PolarityAmbiguous:
		return s.Ambiguous
	default:
		return s.NotSet
	}
}

func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TOTAL NUMBER OF WORDS: %d (Checksum: %d)\n", s.Total, s.Checksum())
	b.WriteString("Those are divided into\n")
	fmt.Fprintf(&b, "Positive: %d\n", s.Positive)
	fmt.Fprintf(&b, "Negative: %d\n", s.Negative)
	fmt.Fprintf(&b, "Neutral.: %d\n", s.Neutral)
	fmt.Fprintf(&b, "Ambiguous: %d\n", s.Ambiguous)
	fmt.Fprintf(&b, "Polarity not set: %d\n", s.NotSet)
	b.WriteString("===============================\n")
	fmt.Fprintf(&b, "Seed words: %d", s.Seeds)
	return b.String()
}
