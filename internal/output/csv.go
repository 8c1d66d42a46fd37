// Package output writes propagated lexicons.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/textenc"
)

// Header is the optional first row of a lexicon file.
var Header = []string{"words", "polarity", "negativeCounter", "neutralCounter", "positiveCounter", "iteration"}

// CSVWriter writes one row per word: text, polarity symbol, negative,
// neutral and positive counters, and iteration.
type CSVWriter struct {
	Header  bool
	Comma   rune
	UseCRLF bool
}

func NewCSVWriter() *CSVWriter {
	return &CSVWriter{Header: true, Comma: ','}
}

func (c *CSVWriter) Write(w io.Writer, g lexicon.Graph) error {
	cw := csv.NewWriter(w)
	if c.Comma != 0 {
		cw.Comma = c.Comma
	}
	cw.UseCRLF = c.UseCRLF

	if c.Header {
		if err := cw.Write(Header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for _, word := range g.Words() {
		row := []string{
			word.Text(),
			string(word.Polarity().Symbol()),
			strconv.Itoa(word.Negative()),
			strconv.Itoa(word.Neutral()),
			strconv.Itoa(word.Positive()),
			strconv.Itoa(word.Iteration()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write word '%s': %w", word.Text(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the lexicon to path, encoded in the named charset.
func (c *CSVWriter) WriteFile(path, encoding string, g lexicon.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := textenc.NewWriter(f, encoding)
	if err != nil {
		return err
	}
	if err := c.Write(w, g); err != nil {
		return err
	}
	return w.Close()
}
