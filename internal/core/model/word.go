package model

import (
	"encoding/json"
	"fmt"
)

// Word is a vertex of the lexical graph. Its identity is the text; the
// counters record the polarity pushed to it by its neighbours and the
// iteration records its distance, in relations, to the closest seed word.
type Word struct {
	id        int64
	text      string
	positive  int
	negative  int
	neutral   int
	iteration int
}

// NewWord creates a word with no polarity and no iteration.
func NewWord(text string) *Word {
	return &Word{id: -1, text: text, iteration: -1}
}

// ID is the node ID assigned by the graph holding the word, or -1.
func (w *Word) ID() int64 { return w.id }

// Bind is called by a graph when it takes ownership of the word.
func (w *Word) Bind(id int64) { w.id = id }

func (w *Word) Text() string   { return w.text }
func (w *Word) Positive() int  { return w.positive }
func (w *Word) Negative() int  { return w.negative }
func (w *Word) Neutral() int   { return w.neutral }
func (w *Word) Iteration() int { return w.iteration }

func (w *Word) IncPositive() *Word {
	w.positive++
	return w
}

func (w *Word) IncNegative() *Word {
	w.negative++
	return w
}

func (w *Word) IncNeutral() *Word {
	w.neutral++
	return w
}

func (w *Word) IncIteration() *Word {
	w.iteration++
	return w
}

func (w *Word) SetIteration(iteration int) {
	w.iteration = iteration
}

// SeedPositive marks the word as a positive seed.
func (w *Word) SeedPositive() *Word {
	return w.seed(1, 0, 0)
}

// SeedNegative marks the word as a negative seed.
func (w *Word) SeedNegative() *Word {
	return w.seed(0, 1, 0)
}

// SeedNeutral marks the word as a neutral seed.
func (w *Word) SeedNeutral() *Word {
	return w.seed(0, 0, 1)
}

func (w *Word) seed(pos, neg, neu int) *Word {
	w.positive, w.negative, w.neutral = pos, neg, neu
	w.iteration = 0
	return w
}

func (w *Word) IsSeed() bool       { return w.iteration == 0 }
func (w *Word) IterationSet() bool { return w.iteration >= 0 }

func (w *Word) Polarity() Polarity {
	return Classify(w.positive, w.negative, w.neutral)
}

func (w *Word) IsPositive() bool  { return w.Polarity() == PolarityPositive }
func (w *Word) IsNegative() bool  { return w.Polarity() == PolarityNegative }
func (w *Word) IsNeutral() bool   { return w.Polarity() == PolarityNeutral }
func (w *Word) IsAmbiguous() bool { return w.Polarity() == PolarityAmbiguous }
func (w *Word) HasPolarity() bool { return w.Polarity() != PolarityNotSet }

// CopyState copies the counters and the iteration of from into w. The text
// and the graph binding of w are left untouched.
func (w *Word) CopyState(from *Word) *Word {
	w.positive = from.positive
	w.negative = from.negative
	w.neutral = from.neutral
	w.iteration = from.iteration
	return w
}

func (w *Word) String() string {
	return fmt.Sprintf("%s[+:%d -:%d 0:%d I:%d]", w.text, w.positive, w.negative, w.neutral, w.iteration)
}

type wordJSON struct {
	Text      string   `json:"word"`
	Polarity  Polarity `json:"polarity"`
	Positive  int      `json:"positive_counter"`
	Negative  int      `json:"negative_counter"`
	Neutral   int      `json:"neutral_counter"`
	Iteration int      `json:"iteration"`
	Seed      bool     `json:"seed"`
}

func (w *Word) MarshalJSON() ([]byte, error) {
	return json.Marshal(wordJSON{
		Text:      w.text,
		Polarity:  w.Polarity(),
		Positive:  w.positive,
		Negative:  w.negative,
		Neutral:   w.neutral,
		Iteration: w.iteration,
		Seed:      w.IsSeed(),
	})
}
