package driver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMemgraphDriver_InvalidURI(t *testing.T) {
	_, err := NewMemgraphDriver(context.Background(), "not-a-scheme://localhost", "", "")
	assert.ErrorContains(t, err, "failed to create driver")
}

func TestQueriesAreScopedByRun(t *testing.T) {
	for name, q := range map[string]string{
		"SaveRunQuery":       SaveRunQuery,
		"SaveWordsQuery":     SaveWordsQuery,
		"SaveRelationsQuery": SaveRelationsQuery,
		"GetWordQuery":       GetWordQuery,
		"DeleteRunQuery":     DeleteRunQuery,
	} {
		assert.True(t, strings.Contains(q, "$run_id"), name)
	}
	assert.Contains(t, SaveWordsQuery, "UNWIND $words")
	assert.Contains(t, SaveRelationsQuery, "UNWIND $relations")
}
