package cmd

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/aoc/puzzle/day01"
	"github.com/ardnew/aoc/puzzle/day02"
	"github.com/ardnew/aoc/puzzle/day03"
)

// Part solves one half of a puzzle from its input.
type Part func(input string) (int, error)

// Day describes one registered puzzle.
type Day struct {
	Name    string // Canonical name, "dayNN"
	Title   string
	Example string
	Parts   []Part // Parts[0] is part 1
}

var registry = []Day{
	{
		Name:    "day01",
		Title:   day01.Title,
		Example: day01.Example,
		Parts:   []Part{day01.Part1, day01.Part2},
	},
	{
		Name:    "day02",
		Title:   day02.Title,
		Example: day02.Example,
		Parts:   []Part{day02.Part1, day02.Part2},
	},
	{
		Name:    "day03",
		Title:   day03.Title,
		Example: day03.Example,
		Parts:   []Part{day03.Part1, day03.Part2},
	},
}

// maxSuggestions bounds the "did you mean" list of [Lookup].
const maxSuggestions = 3

// Days returns every registered day in order.
func Days() []Day { return slices.Clone(registry) }

// Names returns the canonical names of every registered day.
func Names() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.Name
	}

	return names
}

// Canonical returns the canonical name of the day spelled name, which may
// be a bare number ("1", "01") or carry a "day" prefix in any case.
func Canonical(name string) (string, bool) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "day")
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return "", false
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 25 {
		return "", false
	}

	return fmt.Sprintf("day%02d", n), true
}

// Lookup returns the registered day spelled name. For unknown names the
// error suggests registered days that fuzzily match.
func Lookup(name string) (Day, error) {
	if canon, ok := Canonical(name); ok {
		i := slices.IndexFunc(registry, func(d Day) bool { return d.Name == canon })
		if i >= 0 {
			return registry[i], nil
		}
	}

	err := ErrUnknownDay.With(slog.String("day", name))

	if s := suggest(name); len(s) > 0 {
		return Day{}, err.Wrap(
			fmt.Errorf("%q (did you mean %s?)", name, strings.Join(s, " or ")),
		)
	}

	return Day{}, err.Wrap(fmt.Errorf("%q", name))
}

func suggest(name string) []string {
	pattern := strings.ToLower(strings.TrimSpace(name))
	if pattern == "" {
		return nil
	}

	matches := fuzzy.Find(pattern, Names())

	s := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches[:min(len(matches), maxSuggestions)] {
		s = append(s, m.Str)
	}

	return s
}

// Select returns the part numbers to solve: all of them when n is 0,
// otherwise just n.
func (d Day) Select(n int) ([]int, error) {
	if n == 0 {
		parts := make([]int, len(d.Parts))
		for i := range parts {
			parts[i] = i + 1
		}

		return parts, nil
	}

	if n < 1 || n > len(d.Parts) {
		return nil, ErrUnknownPart.
			Wrap(fmt.Errorf("%s has no part %d", d.Name, n)).
			With(slog.String("day", d.Name), slog.Int("part", n))
	}

	return []int{n}, nil
}

// Answer is the result of one part.
type Answer struct {
	Part  int `json:"part"   yaml:"part"`
	Value int `json:"answer" yaml:"answer"`
}

// Solve runs the given parts against input in order. It stops at the first
// failing part and returns no answers in that case.
func (d Day) Solve(input string, parts ...int) ([]Answer, error) {
	answers := make([]Answer, 0, len(parts))

	for _, n := range parts {
		if n < 1 || n > len(d.Parts) {
			return nil, ErrUnknownPart.
				Wrap(fmt.Errorf("%s has no part %d", d.Name, n))
		}

		v, err := d.Parts[n-1](input)
		if err != nil {
			return nil, ErrSolve.Wrap(err).
				With(slog.String("day", d.Name), slog.Int("part", n))
		}

		answers = append(answers, Answer{Part: n, Value: v})
	}

	return answers, nil
}
