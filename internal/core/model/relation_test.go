package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelationType(t *testing.T) {
	assert.Equal(t, RelationSynonym, ParseRelationType("synonym_of"))
	assert.Equal(t, RelationSynonym, ParseRelationType("SINONIMO_N_DE"))
	assert.Equal(t, RelationSynonym, ParseRelationType("Syn"))
	assert.Equal(t, RelationAntonym, ParseRelationType("ANTONIMO_ADJ_DE"))
	assert.Equal(t, RelationAntonym, ParseRelationType("antonym_of"))
	assert.Equal(t, RelationUnknown, ParseRelationType("HIPERONIMO_DE"))
	assert.Equal(t, RelationUnknown, ParseRelationType(""))
}

func TestRelationOther(t *testing.T) {
	a, b := NewWord("a"), NewWord("b")
	r := NewRelation(1, a, b, RelationSynonym)

	got, err := r.Other(a)
	require.NoError(t, err)
	assert.Same(t, b, got)

	got, err = r.Other(b)
	require.NoError(t, err)
	assert.Same(t, a, got)

	// Lookup is by identity, not by instance.
	got, err = r.Other(NewWord("a"))
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = r.Other(NewWord("c"))
	assert.ErrorIs(t, err, ErrInconsistentRelation)
}

func TestRelationSelf(t *testing.T) {
	a, b := NewWord("a"), NewWord("b")
	r := NewRelation(1, a, b, RelationAntonym)

	got, err := r.Self(NewWord("b"))
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = r.Self(NewWord("z"))
	assert.ErrorIs(t, err, ErrInconsistentRelation)
}

func TestRelationSelfLoopOther(t *testing.T) {
	a := NewWord("a")
	r := NewRelation(3, a, a, RelationSynonym)

	got, err := r.Other(a)
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestRelationReversed(t *testing.T) {
	a, b := NewWord("a"), NewWord("b")
	r := NewRelation(9, a, b, RelationAntonym)

	rev := r.ReversedLine().(*Relation)
	assert.Same(t, b, rev.F)
	assert.Same(t, a, rev.T)
	assert.Equal(t, int64(9), rev.ID())
	assert.Equal(t, RelationAntonym, rev.Type)
	assert.Equal(t, "a ANTONYM b", r.String())
}
