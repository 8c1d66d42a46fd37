// Package textenc reads and writes text in IANA named character sets.
package textenc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned for names that are not usable IANA charsets.
var ErrUnsupportedEncoding = errors.New("polarity: unsupported character encoding")

// Lookup resolves an IANA charset name. An empty name, or any spelling of
// UTF-8, resolves to nil, meaning no transcoding is needed.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedEncoding, name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

// NewReader decodes r from the named charset into UTF-8.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil || enc == nil {
		return r, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// NewWriter encodes UTF-8 written to the result into the named charset on w.
// Close flushes pending bytes; it does not close w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nopCloser{w}, nil
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
