package loader

import (
	"fmt"
	"strings"
)

// Filter decides whether a triple read from file is loaded. fields always
// holds three elements.
type Filter interface {
	Accept(fields []string) bool
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(fields []string) bool

func (f FilterFunc) Accept(fields []string) bool { return f(fields) }

// PartOfSpeech selects PAPEL relations by the grammatical category encoded in
// the relation name suffix, e.g. SINONIMO_N_DE for nouns.
type PartOfSpeech string

const (
	POSAll       PartOfSpeech = "all"
	POSNoun      PartOfSpeech = "noun"
	POSVerb      PartOfSpeech = "verb"
	POSAdjective PartOfSpeech = "adjective"
	POSAdverb    PartOfSpeech = "adverb"
)

var posSuffix = map[PartOfSpeech]string{
	POSNoun:      "_N_DE",
	POSVerb:      "_V_DE",
	POSAdjective: "_ADJ_DE",
	POSAdverb:    "_ADV_DE",
}

// ParsePartOfSpeech accepts the names above, case insensitive. Empty means all.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	pos := PartOfSpeech(strings.ToLower(strings.TrimSpace(s)))
	if pos == "" || pos == POSAll {
		return POSAll, nil
	}
	if _, ok := posSuffix[pos]; !ok {
		return "", fmt.Errorf("unknown part of speech %q", s)
	}
	return pos, nil
}

// POSFilter keeps PAPEL triples whose relation belongs to one part of speech.
type POSFilter struct {
	POS PartOfSpeech
}

func (f POSFilter) Accept(fields []string) bool {
	suffix, ok := posSuffix[f.POS]
	if !ok {
		return true
	}
	return strings.HasSuffix(strings.ToUpper(fields[1]), suffix)
}
