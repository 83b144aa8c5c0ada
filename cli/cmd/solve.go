package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/aoc/log"
)

// Solve solves one or both parts of a puzzle.
type Solve struct {
	Day     string `arg:""         help:"Puzzle day (1, 01 or day01)"                    name:"day"`
	Part    int    `default:"0"    help:"Solve only this part; 0 solves every part"      placeholder:"N"`
	Input   string `help:"Puzzle input file or '-' for stdin (default: search data path)" placeholder:"FILE" short:"i" xor:"source"`
	Example bool   `help:"Solve the puzzle's example input"                               short:"e"          xor:"source"`
	Output  Format `default:"text" enum:"text,json,yaml"                                  help:"Output format" short:"o"`
}

// Result is the printed outcome of [Solve].
type Result struct {
	Day     string   `json:"day"     yaml:"day"`
	Title   string   `json:"title"   yaml:"title"`
	Input   string   `json:"input"   yaml:"input"`
	Answers []Answer `json:"answers" yaml:"answers"`
}

// exampleSource names the built-in example input in a [Result].
const exampleSource = "example"

// Run executes the solve command.
func (s *Solve) Run(ctx context.Context) error {
	day, err := Lookup(s.Day)
	if err != nil {
		return err
	}

	parts, err := day.Select(s.Part)
	if err != nil {
		return err
	}

	input, source := day.Example, exampleSource
	if !s.Example {
		input, source, err = readInput(ctx, day, s.Input)
		if err != nil {
			return err
		}
	}

	log.DebugContext(ctx, "solving",
		slog.String("day", day.Name),
		slog.Any("parts", parts),
		slog.String("input", source),
	)

	answers, err := day.Solve(input, parts...)
	if err != nil {
		return err
	}

	res := Result{
		Day:     day.Name,
		Title:   day.Title,
		Input:   source,
		Answers: answers,
	}

	return s.Output.write(ctx, stdout(ctx), res, res.text)
}

func (r Result) text(st styles) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", st.name.Render(r.Day), st.title.Render(r.Title))

	for _, a := range r.Answers {
		fmt.Fprintf(&b, "  %s %s\n",
			st.label.Render(fmt.Sprintf("part %d:", a.Part)),
			st.value.Render(fmt.Sprint(a.Value)),
		)
	}

	return b.String()
}
