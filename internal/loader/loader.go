// Package loader reads relation triples and seed words from text files.
//
// Triples files hold one "<word1> <relation> <word2>" triple per line. Seed
// files hold one "<word><sep><polarity>" pair per line, where sep is one of
// ';', ':', ',' or whitespace and the sign of the number gives the polarity.
// Blank lines and comment lines are ignored in both; malformed lines are
// skipped.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agenthands/polarity/internal/textenc"
)

const maxLineSize = 1024 * 1024

func isComment(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "//") ||
		strings.HasPrefix(line, "/*")
}

// scanLines calls fn for every non-comment line of r with its 1-based number.
func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if isComment(line) {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// openFile opens path decoding it from the named charset.
func openFile(path, encoding string) (io.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open '%s': %w", path, err)
	}
	r, err := textenc.NewReader(f, encoding)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return r, f.Close, nil
}
