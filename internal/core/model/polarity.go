package model

// Polarity is the sentiment class derived from a word's counters.
type Polarity int

const (
	PolarityNotSet Polarity = iota
	PolarityPositive
	PolarityNegative
	PolarityNeutral
	PolarityAmbiguous
)

func (p Polarity) String() string {
	switch p {
	case PolarityPositive:
		return "POSITIVE"
	case PolarityNegative:
		return "NEGATIVE"
	case PolarityNeutral:
		return "NEUTRAL"
	case PolarityAmbiguous:
		return "AMBIGUOUS"
	default:
		return "NOT_SET"
	}
}

// Symbol returns the one character code used in lexicon files.
func (p Polarity) Symbol() byte {
	switch p {
	case PolarityPositive:
		return '+'
	case PolarityNegative:
		return '-'
	case PolarityNeutral:
		return '0'
	case PolarityAmbiguous:
		return 'A'
	default:
		return 'U'
	}
}

func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Classify derives the polarity of a counter triple. A counter wins only when
// it is strictly greater than both others; any other non-zero combination is
// ambiguous.
func Classify(pos, neg, neu int) Polarity {
	switch {
	case pos <= 0 && neg <= 0 && neu <= 0:
		return PolarityNotSet
	case pos > neg && pos > neu:
		return PolarityPositive
	case neg > pos && neg > neu:
		return PolarityNegative
	case neu > pos && neu > neg:
		return PolarityNeutral
	default:
		return PolarityAmbiguous
	}
}
