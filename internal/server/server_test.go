package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/polarity/internal/config"
	"github.com/agenthands/polarity/internal/core"
)

const directedTriples = `A syn C
A syn D
B syn D
B syn E
C syn F
D syn F
E syn G
E syn H
F ant I
F syn G
H syn E
`

const directedSeeds = "A 1\nB -1\n"

type mockDriver struct {
	queries int
	result  neo4j.EagerResult
	err     error
}

func (m *mockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.queries++
	return m.result, m.err
}

func (m *mockDriver) BuildIndices(ctx context.Context) error { return nil }
func (m *mockDriver) Close(ctx context.Context) error        { return nil }

func newTestServer(d *mockDriver) (*Server, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	p := core.NewPropagator(nil)
	if d != nil {
		p.Driver = d
	}
	s := NewServer(config.Default(), p)
	return s, s.SetupRouter()
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type runResponse struct {
	RunID  string         `json:"run_id"`
	Mode   string         `json:"mode"`
	Stats  map[string]int `json:"stats"`
	Report map[string]int `json:"report"`
}

func propagate(t *testing.T, r http.Handler, req PropagateRequest) runResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/propagate", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp runResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPropagate_Directed(t *testing.T) {
	_, r := newTestServer(nil)

	resp := propagate(t, r, PropagateRequest{Mode: "directed", Triples: directedTriples, Seeds: directedSeeds})

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "directed", resp.Mode)
	assert.Equal(t, 9, resp.Stats["total"])
	assert.Equal(t, 3, resp.Stats["positive"])
	assert.Equal(t, 4, resp.Stats["negative"])
	assert.Equal(t, 2, resp.Stats["ambiguous"])
	assert.Equal(t, 9, resp.Report["dequeued"])
}

func TestPropagate_DefaultModeIsUndirected(t *testing.T) {
	_, r := newTestServer(nil)

	resp := propagate(t, r, PropagateRequest{Triples: "good syn fine\nfine ant bad\n", Seeds: "good 1"})

	assert.Equal(t, "undirected", resp.Mode)
	assert.Equal(t, 2, resp.Stats["positive"])
	assert.Equal(t, 1, resp.Stats["negative"])
}

func TestPropagate_BadRequests(t *testing.T) {
	_, r := newTestServer(nil)

	w := do(t, r, http.MethodPost, "/propagate", map[string]string{"seeds": "a 1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/propagate", PropagateRequest{Mode: "sideways", Triples: "a syn b", Seeds: "a 1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/propagate", PropagateRequest{Triples: "a syn b", Seeds: "a 1", PartOfSpeech: "pronoun"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/propagate", PropagateRequest{Triples: "a syn b", Seeds: "zzz 1"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPost, "/propagate", PropagateRequest{Triples: "a syn b", Seeds: "a 1", Export: true})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPropagate_Export(t *testing.T) {
	d := &mockDriver{}
	_, r := newTestServer(d)

	propagate(t, r, PropagateRequest{Triples: "a syn b\nb ant c\n", Seeds: "a 1", Export: true})
	// run, one batch of words, one batch of relations
	assert.Equal(t, 3, d.queries)

	d.err = fmt.Errorf("connection refused")
	w := do(t, r, http.MethodPost, "/propagate", PropagateRequest{Triples: "a syn b", Seeds: "a 1", Export: true})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "run_id")
}

func TestRunEndpoints(t *testing.T) {
	_, r := newTestServer(nil)
	resp := propagate(t, r, PropagateRequest{Mode: "directed", Triples: directedTriples, Seeds: directedSeeds})
	base := "/runs/" + resp.RunID

	w := do(t, r, http.MethodGet, base+"/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TOTAL NUMBER OF WORDS: 9")

	w = do(t, r, http.MethodGet, base+"/words/D", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var word map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &word))
	assert.Equal(t, "D", word["word"])
	assert.Equal(t, 1.0, word["iteration"])

	w = do(t, r, http.MethodGet, base+"/words/Z", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, base+"/lexicon.csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "words,polarity,negativeCounter,neutralCounter,positiveCounter,iteration", lines[0])
	assert.Equal(t, "A,+,0,0,1,0", lines[1])

	for _, path := range []string{"/runs/unknown/stats", "/runs/unknown/words/A", "/runs/unknown/lexicon.csv"} {
		w = do(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestRunWord_FallsBackToDriver(t *testing.T) {
	d := &mockDriver{result: neo4j.EagerResult{Records: []*neo4j.Record{{
		Keys:   []string{"text", "polarity"},
		Values: []any{"bom", "POSITIVE"},
	}}}}
	_, r := newTestServer(d)

	w := do(t, r, http.MethodGet, "/runs/old-run/words/bom", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "POSITIVE")

	d.result = neo4j.EagerResult{}
	w = do(t, r, http.MethodGet, "/runs/old-run/words/mau", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStore_EvictsOldestRun(t *testing.T) {
	s, r := newTestServer(nil)

	first := propagate(t, r, PropagateRequest{Triples: "a syn b", Seeds: "a 1"})
	for i := 0; i < MaxRuns; i++ {
		propagate(t, r, PropagateRequest{Triples: "a syn b", Seeds: "a 1"})
	}

	_, ok := s.lookup(first.RunID)
	assert.False(t, ok)
	assert.Len(t, s.runs, MaxRuns)
}

func TestMetricsEndpoint(t *testing.T) {
	_, r := newTestServer(nil)
	propagate(t, r, PropagateRequest{Triples: "a syn b", Seeds: "a 1"})

	w := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "polarity_runs_total")
}
