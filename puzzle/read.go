package puzzle

import (
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// Read reads all of r and returns it with trailing whitespace removed.
// Leading blank lines are kept so line numbers in parse errors match the
// source; the parsers skip them.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", ErrReadInput.Wrap(err)
	}

	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}

// ReadFile reads the named file like [Read].
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", ErrReadInput.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return "", WrapError(err).With(slog.String("path", path))
	}

	return s, nil
}

// Lines returns an iterator over the lines of s paired with their 1-based
// line numbers. A trailing carriage return is removed from each line, and
// a trailing newline does not produce an extra empty line.
func Lines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if s == "" {
			return
		}

		n := 0
		for line := range strings.Lines(s) {
			n++

			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if !yield(n, line) {
				return
			}
		}
	}
}
