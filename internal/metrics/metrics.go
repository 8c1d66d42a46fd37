// Package metrics exposes Prometheus instrumentation for propagation runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agenthands/polarity/internal/core/stats"
)

const (
	ResultSuccess = "success"
	ResultNoSeeds = "no_seeds"
	ResultError   = "error"
)

var (
	// RunsTotal counts propagation runs.
	// Labels: mode ("directed", "undirected"), result ("success", "no_seeds", "error")
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polarity_runs_total",
		Help: "Total propagation runs by mode and result",
	}, []string{"mode", "result"})

	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polarity_run_duration_seconds",
		Help:    "Propagation run duration",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
	}, []string{"mode"})

	WordsDequeued = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "polarity_words_dequeued",
		Help:    "Words processed per propagation run",
		Buckets: prometheus.ExponentialBuckets(1, 10, 7),
	})

	// LastRunWords holds the polarity breakdown of the most recent run.
	LastRunWords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "polarity_last_run_words",
		Help: "Words by final polarity in the last propagation run",
	}, []string{"polarity"})

	ExportedWords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polarity_exported_words_total",
		Help: "Words written to the graph database",
	})
)

// ObserveRun records one finished run.
func ObserveRun(mode, result string, elapsed time.Duration, dequeued int) {
	RunsTotal.WithLabelValues(mode, result).Inc()
	RunDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if result == ResultSuccess {
		WordsDequeued.Observe(float64(dequeued))
	}
}

// SetLastRun replaces the polarity gauges with s.
func SetLastRun(s stats.Stats) {
	LastRunWords.WithLabelValues("positive").Set(float64(s.Positive))
	LastRunWords.WithLabelValues("negative").Set(float64(s.Negative))
	LastRunWords.WithLabelValues("neutral").Set(float64(s.Neutral))
	LastRunWords.WithLabelValues("ambiguous").Set(float64(s.Ambiguous))
	LastRunWords.WithLabelValues("not_set").Set(float64(s.NotSet))
}
