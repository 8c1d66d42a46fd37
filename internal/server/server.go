package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agenthands/polarity/internal/config"
	"github.com/agenthands/polarity/internal/core"
	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/core/propagation"
	"github.com/agenthands/polarity/internal/loader"
	"github.com/agenthands/polarity/internal/output"
	"github.com/agenthands/polarity/internal/textenc"
)

// MaxRuns bounds the number of finished runs kept in memory. The oldest run
// is evicted first.
const MaxRuns = 64

type Server struct {
	Propagator *core.Propagator
	Config     *config.Config

	// runMu serializes propagation: a graph is mutated in place by a run.
	runMu sync.Mutex

	mu    sync.RWMutex
	runs  map[string]*core.Result
	order []string
}

func NewServer(cfg *config.Config, p *core.Propagator) *Server {
	return &Server{
		Propagator: p,
		Config:     cfg,
		runs:       make(map[string]*core.Result),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/propagate", s.Propagate)
	r.GET("/runs/:id/stats", s.RunStats)
	r.GET("/runs/:id/words/:word", s.RunWord)
	r.GET("/runs/:id/lexicon.csv", s.RunLexicon)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type PropagateRequest struct {
	Mode         string `json:"mode" binding:"omitempty,oneof=directed undirected"`
	Triples      string `json:"triples" binding:"required"`
	Seeds        string `json:"seeds" binding:"required"`
	PartOfSpeech string `json:"part_of_speech"`
	Export       bool   `json:"export"`
}

func (s *Server) Propagate(c *gin.Context) {
	var req PropagateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Mode == "" {
		req.Mode = s.Config.Propagation.Mode
	}
	if req.PartOfSpeech == "" {
		req.PartOfSpeech = s.Config.Input.PartOfSpeech
	}
	if req.Export && s.Propagator.Driver == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Export is not configured"})
		return
	}

	l, err := loader.NewPOSLoader(req.PartOfSpeech)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l.IgnoreSelfRelations = s.Config.Input.IgnoreSelfRelations

	var g lexicon.Graph
	if req.Mode == config.ModeDirected {
		g, err = l.LoadDirected(strings.NewReader(req.Triples))
	} else {
		g, err = l.LoadUndirected(strings.NewReader(req.Triples))
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seeds, err := loader.LoadSeeds(strings.NewReader(req.Seeds))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.runMu.Lock()
	res, err := s.Propagator.Run(c.Request.Context(), g, seeds)
	s.runMu.Unlock()
	if errors.Is(err, propagation.ErrNoSeedsMatched) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No seed word found in the graph"})
		return
	}
	if err != nil {
		slog.Error("server: propagation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to propagate polarity"})
		return
	}
	s.store(res)

	if req.Export {
		if err := s.Propagator.Export(c.Request.Context(), res); err != nil {
			slog.Error("server: export failed", "run_id", res.RunID, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to export lexicon", "run_id": res.RunID})
			return
		}
	}

	c.JSON(http.StatusOK, res)
}

func (s *Server) RunStats(c *gin.Context) {
	res, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": res.RunID, "stats": res.Stats, "summary": res.Stats.String()})
}

// RunWord serves a word of a run kept in memory, or reads it back from the
// graph database for older runs.
func (s *Server) RunWord(c *gin.Context) {
	id, text := c.Param("id"), c.Param("word")

	if res, ok := s.lookup(id); ok {
		w, err := res.Word(text)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
			return
		}
		c.JSON(http.StatusOK, w)
		return
	}

	if s.Propagator.Driver == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}
	w, err := s.Propagator.LoadWord(c.Request.Context(), id, text)
	if errors.Is(err, core.ErrUnknownWord) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
		return
	}
	if err != nil {
		slog.Error("server: failed to load word", "run_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load word"})
		return
	}
	c.JSON(http.StatusOK, w)
}

func (s *Server) RunLexicon(c *gin.Context) {
	res, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}

	out := s.Config.Output
	enc := out.Encoding
	if enc == "" {
		enc = "utf-8"
	}
	w, err := textenc.NewWriter(c.Writer, out.Encoding)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv; charset="+enc)
	c.Header("Content-Disposition", `attachment; filename="lexicon-`+res.RunID+`.csv"`)
	c.Status(http.StatusOK)

	csvw := &output.CSVWriter{Header: out.Header, Comma: s.Config.Comma(), UseCRLF: out.CRLF}
	if err := csvw.Write(w, res.Graph); err != nil {
		slog.Error("server: failed to write lexicon", "run_id", res.RunID, "error", err)
	}
	if err := w.Close(); err != nil {
		slog.Error("server: failed to flush lexicon", "run_id", res.RunID, "error", err)
	}
}

func (s *Server) store(res *core.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[res.RunID] = res
	s.order = append(s.order, res.RunID)
	for len(s.order) > MaxRuns {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *Server) lookup(id string) (*core.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.runs[id]
	return res, ok
}
