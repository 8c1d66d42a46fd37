package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestPropagate_DefaultOutput(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "triples.txt", "# tiny\ngood syn fine\nfine ant bad\nbad syn awful\n")
	seeds := writeFile(t, dir, "seeds.txt", "good;1\n")

	out, err := execute(t, "propagate", "--seeds", seeds, "--graph", graph)
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL NUMBER OF WORDS: 4")
	assert.Contains(t, out, DefaultOutputName)

	data, err := os.ReadFile(filepath.Join(dir, DefaultOutputName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		"words,polarity,negativeCounter,neutralCounter,positiveCounter,iteration",
		"good,+,0,0,1,0",
		"fine,+,0,0,1,1",
		"bad,-,1,0,0,2",
		"awful,-,1,0,0,3",
	}, lines)
}

func TestPropagate_DirectedNoHeader(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "triples.txt", "a syn b\nb syn a\n")
	seeds := writeFile(t, dir, "seeds.txt", "a 1\n")
	output := filepath.Join(dir, "out.csv")

	_, err := execute(t, "propagate", "--seeds", seeds, "--graph", graph, "--directed", "--no-header", "-o", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	// The directed walk pushes back into the seed.
	assert.Equal(t, "a,+,0,0,2,0\nb,+,0,0,1,1\n", string(data))
}

func TestPropagate_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "triples.txt", "a syn b\n")
	seeds := writeFile(t, dir, "seeds.txt", "a -1\n")
	output := filepath.Join(dir, "out.csv")
	cfg := writeFile(t, dir, "config.toml", "[output]\nseparator = \";\"\npath = \""+filepath.ToSlash(output)+"\"\n")

	_, err := execute(t, "--config", cfg, "propagate", "--seeds", seeds, "--graph", graph)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "b;-;1;0;0;1")
}

func TestPropagate_UsageErrors(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "triples.txt", "a syn b\n")

	_, err := execute(t, "propagate", "--graph", graph)
	assert.Error(t, err)

	out, err := execute(t, "propagate", "--graph", graph, "--seeds", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
	assert.Contains(t, out, "Usage:")

	seeds := writeFile(t, dir, "seeds.txt", "a 1\n")
	_, err = execute(t, "propagate", "--graph", graph, "--seeds", seeds, "--pos", "pronoun")
	assert.Error(t, err)
}

func TestPropagate_NoSeedInGraph(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "triples.txt", "a syn b\n")
	seeds := writeFile(t, dir, "seeds.txt", "zzz 1\n")

	_, err := execute(t, "propagate", "--graph", graph, "--seeds", seeds)
	assert.ErrorContains(t, err, "no seed word found")
}

func TestExample(t *testing.T) {
	out, err := execute(t, "example", "directed")
	require.NoError(t, err)
	assert.Contains(t, out, "D[+:1 -:1 0:0 I:1]")
	assert.Contains(t, out, "Ambiguous: 2")

	out, err = execute(t, "example", "undirected", "--relations")
	require.NoError(t, err)
	assert.Contains(t, out, "0 SYNONYM 5")
	assert.Contains(t, out, "Polarity not set: 2")

	_, err = execute(t, "example", "sideways")
	assert.Error(t, err)
}
