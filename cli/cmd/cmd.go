package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ardnew/mung"

	"github.com/ardnew/aoc/puzzle"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer results are printed to.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Kong != nil &&
		ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

type stdinKey struct{}

// WithStdin returns a new context.Context whose standard input is r.
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

const (
	// DefaultDataDir is searched for puzzle input before any other directory.
	DefaultDataDir = "data"

	// InputExt is the file extension of puzzle input files.
	InputExt = ".input"

	// stdinSource is the special input path for reading from stdin.
	stdinSource = "-"
)

type dataPathKey struct{}

// WithDataPath returns a new context.Context carrying the directories
// searched for puzzle input. See [SearchPath].
func WithDataPath(ctx context.Context, list string) context.Context {
	return context.WithValue(ctx, dataPathKey{}, SearchPath(list))
}

func dataPathFrom(ctx context.Context) []string {
	if dirs, ok := ctx.Value(dataPathKey{}).([]string); ok {
		return dirs
	}

	return []string{DefaultDataDir}
}

// SearchPath splits the PATH-like list into directories, with
// [DefaultDataDir] first. Empty and repeated entries are dropped.
func SearchPath(list string) []string {
	joined := mung.Make(
		mung.WithSubjectItems(list),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(DefaultDataDir),
	).String()

	var dirs []string

	for _, dir := range filepath.SplitList(joined) {
		dir = strings.TrimSpace(dir)
		if dir != "" && !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// findInput returns the first <name>.input found in dirs.
func findInput(dirs []string, name string) (string, error) {
	for _, dir := range dirs {
		path := filepath.Join(dir, name+InputExt)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	return "", ErrNoInput.
		Wrap(fmt.Errorf("%s%s not found", name, InputExt)).
		With(slog.Any("path", dirs))
}

// readInput returns the puzzle input for day and a description of
// where it came from. An empty path searches the context's data path; "-"
// reads standard input.
func readInput(
	ctx context.Context,
	day Day,
	path string,
) (input, source string, err error) {
	switch path {
	case stdinSource:
		input, err = puzzle.Read(stdinFrom(ctx))

		return input, "stdin", err

	case "":
		path, err = findInput(dataPathFrom(ctx), day.Name)
		if err != nil {
			return "", "", err
		}
	}

	input, err = puzzle.ReadFile(path)

	return input, path, err
}
