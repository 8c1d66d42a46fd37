package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[propagation]
mode = "directed"

[input]
encoding = "ISO-8859-1"
part_of_speech = "adjective"

[output]
separator = ";"
header = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Directed())
	assert.Equal(t, "ISO-8859-1", cfg.Input.Encoding)
	assert.Equal(t, "adjective", cfg.Input.PartOfSpeech)
	assert.Equal(t, ';', cfg.Comma())
	assert.False(t, cfg.Output.Header)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Input.IgnoreSelfRelations)
	assert.Equal(t, "bolt://localhost:7687", cfg.Memgraph.URI)
	assert.Equal(t, 500, cfg.Memgraph.BatchSize)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[propagation\nmode ="))
	assert.Error(t, err)
}

func TestLoad_RepositoryConfig(t *testing.T) {
	cfg, err := Load("../../config/config.toml")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.Directed())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Propagation.Mode = "sideways"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Output.Separator = ";;"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Input.PartOfSpeech = "pronoun"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Memgraph.BatchSize = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("POLARITY_MODE", "directed")
	t.Setenv("POLARITY_ENCODING", "latin1")
	t.Setenv("MEMGRAPH_URI", "bolt://graph:7687")
	t.Setenv("MEMGRAPH_BATCH_SIZE", "42")
	t.Setenv("PORT", "9090")

	cfg := Default()
	cfg.ApplyEnv()

	assert.True(t, cfg.Directed())
	assert.Equal(t, "latin1", cfg.Input.Encoding)
	assert.Equal(t, "latin1", cfg.Output.Encoding)
	assert.Equal(t, "bolt://graph:7687", cfg.Memgraph.URI)
	assert.Equal(t, 42, cfg.Memgraph.BatchSize)
	assert.Equal(t, "9090", cfg.Server.Port)
}
