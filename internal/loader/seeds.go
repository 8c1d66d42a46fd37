package loader

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/agenthands/polarity/internal/core/model"
)

var seedSeparator = regexp.MustCompile(`[;:,\s]\s*`)

// LoadSeeds reads seed words from r, marked with the polarity given by the
// sign of their number: positive, negative, or neutral for zero.
func LoadSeeds(r io.Reader) ([]*model.Word, error) {
	var seeds []*model.Word
	err := scanLines(r, func(n int, line string) error {
		fields := seedSeparator.Split(strings.TrimSpace(line), -1)
		if len(fields) < 2 {
			slog.Debug("loader: skipping seed", "line", n, "reason", "missing polarity")
			return nil
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil || math.IsNaN(value) {
			slog.Warn("loader: skipping seed", "line", n, "word", fields[0], "polarity", fields[1])
			return nil
		}

		w := model.NewWord(strings.TrimSpace(fields[0]))
		switch {
		case value > 0:
			w.SeedPositive()
		case value < 0:
			w.SeedNegative()
		default:
			w.SeedNeutral()
		}
		seeds = append(seeds, w)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read seed words: %w", err)
	}
	return seeds, nil
}

// LoadSeedsFile reads the seed file at path, decoded from encoding.
func LoadSeedsFile(path, encoding string) ([]*model.Word, error) {
	r, closeFn, err := openFile(path, encoding)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return LoadSeeds(r)
}

// Attach replaces every seed with the graph's own record for its text,
// carrying the seed state over. Seeds absent from g are dropped and, as in
// undirected propagation, the first seed for a text wins. Directed
// propagation needs the graph's records.
func Attach(g interface {
	Word(text string) (*model.Word, bool)
}, seeds []*model.Word) []*model.Word {
	out := make([]*model.Word, 0, len(seeds))
	seen := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		if seen[s.Text()] {
			continue
		}
		seen[s.Text()] = true
		w, ok := g.Word(s.Text())
		if !ok {
			slog.Warn("loader: seed word not in graph", "word", s.Text())
			continue
		}
		out = append(out, w.CopyState(s))
	}
	return out
}
