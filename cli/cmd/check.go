package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/aoc/log"
	"github.com/ardnew/aoc/puzzle"
)

// Check verifies puzzle answers against an answers file.
//
// An answers file maps day names to the input to solve and a list of
// boolean expressions over the answers:
//
//	day01:
//	  input: day01.input   # relative to the answers file
//	  expect:
//	    - part1 == 24000
//	    - part2 > part1
//	day02:
//	  example: true
//	  expect: [part1 == 15, part2 == 12]
//
// Expressions see the variables day, part1 and part2. A day without input
// or example is read from the data path.
type Check struct {
	File   string `arg:""         help:"YAML answers file"           name:"answers" type:"existingfile"`
	Output Format `default:"text" enum:"text,json,yaml" help:"Output format" short:"o"`
}

// Expectation is one day's entry in an answers file.
type Expectation struct {
	Input   string   `yaml:"input"`
	Example bool     `yaml:"example"`
	Expect  []string `yaml:"expect"`
}

// Verdict is the outcome of one assertion.
type Verdict struct {
	Day       string `json:"day"             yaml:"day"`
	Assertion string `json:"assertion"       yaml:"assertion"`
	Pass      bool   `json:"pass"            yaml:"pass"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

type verdicts []Verdict

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return ErrAnswers.Wrap(err).With(slog.String("path", c.File))
	}
	defer f.Close()

	answers, err := LoadAnswers(ctx, f)
	if err != nil {
		return puzzle.WrapError(err).With(slog.String("path", c.File))
	}

	list, err := Verify(ctx, answers, filepath.Dir(c.File))
	if err != nil {
		return err
	}

	vs := verdicts(list)

	if err := c.Output.write(ctx, stdout(ctx), vs, vs.text); err != nil {
		return err
	}

	if failed := vs.failed(); failed > 0 {
		return ErrCheckFailed.
			Wrap(fmt.Errorf("%d of %d assertions failed", failed, len(vs))).
			With(slog.Int("failed", failed), slog.Int("total", len(vs)))
	}

	return nil
}

// LoadAnswers decodes an answers file. Unknown fields are rejected.
func LoadAnswers(
	ctx context.Context,
	r io.Reader,
) (map[string]Expectation, error) {
	var answers map[string]Expectation

	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.DecodeContext(ctx, &answers); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrAnswers.Wrap(errors.New("no days"))
		}

		return nil, ErrAnswers.Wrap(err)
	}

	if len(answers) == 0 {
		return nil, ErrAnswers.Wrap(errors.New("no days"))
	}

	return answers, nil
}

// Verify solves every day in answers, in day order, and evaluates its
// assertions. Relative input paths are resolved against base.
//
// A day that fails to solve fails each of its assertions. Unknown day
// names, two keys naming the same day and unreadable inputs are returned
// as errors.
func Verify(
	ctx context.Context,
	answers map[string]Expectation,
	base string,
) ([]Verdict, error) {
	entries, err := resolveDays(answers)
	if err != nil {
		return nil, err
	}

	var vs []Verdict

	for _, e := range entries {
		day, exp := e.day, e.exp

		input, err := exp.input(ctx, day, base)
		if err != nil {
			return nil, err
		}

		env := map[string]any{"day": day.Name}

		results, err := day.Solve(input, allParts(day)...)
		if err != nil {
			log.WarnContext(ctx, "solve failed",
				slog.String("day", day.Name),
				slog.Any("error", err),
			)
		}

		for _, a := range results {
			env[fmt.Sprintf("part%d", a.Part)] = a.Value
		}

		for _, src := range exp.Expect {
			v := Verdict{Day: day.Name, Assertion: src}

			if err != nil {
				v.Error = err.Error()
			} else {
				v.Pass, v.Error = evaluate(src, env)
			}

			vs = append(vs, v)
		}
	}

	return vs, nil
}

// answerEntry is an answers file entry resolved to its registered day.
type answerEntry struct {
	day Day
	exp Expectation
}

// resolveDays looks up every key of answers and orders the entries by
// canonical day name.
func resolveDays(answers map[string]Expectation) ([]answerEntry, error) {
	entries := make([]answerEntry, 0, len(answers))
	seen := make(map[string]string, len(answers))

	for _, key := range slices.Sorted(maps.Keys(answers)) {
		day, err := Lookup(key)
		if err != nil {
			return nil, err
		}

		if prev, ok := seen[day.Name]; ok {
			return nil, ErrAnswers.
				Wrap(fmt.Errorf("%q and %q both name %s", prev, key, day.Name)).
				With(slog.String("day", day.Name))
		}

		seen[day.Name] = key
		entries = append(entries, answerEntry{day: day, exp: answers[key]})
	}

	slices.SortFunc(entries, func(a, b answerEntry) int {
		return strings.Compare(a.day.Name, b.day.Name)
	})

	return entries, nil
}

func allParts(d Day) []int {
	parts, _ := d.Select(0)

	return parts
}

func (e Expectation) input(
	ctx context.Context,
	day Day,
	base string,
) (string, error) {
	if e.Example {
		return day.Example, nil
	}

	path := e.Input
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	input, _, err := readInput(ctx, day, path)

	return input, err
}

// evaluate compiles src as a boolean expression over env and runs it.
func evaluate(src string, env map[string]any) (pass bool, msg string) {
	program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, err.Error()
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, err.Error()
	}

	pass, _ = out.(bool)

	return pass, ""
}

func (vs verdicts) failed() int {
	n := 0

	for _, v := range vs {
		if !v.Pass {
			n++
		}
	}

	return n
}

func (vs verdicts) text(st styles) string {
	var b strings.Builder

	for _, v := range vs {
		mark := st.pass.Render("PASS")
		if !v.Pass {
			mark = st.fail.Render("FAIL")
		}

		fmt.Fprintf(&b, "%s %s %s\n", mark, st.name.Render(v.Day), v.Assertion)

		if v.Error != "" {
			fmt.Fprintf(&b, "     %s\n", st.dim.Render(v.Error))
		}
	}

	fmt.Fprintf(&b, "%d passed, %d failed\n", len(vs)-vs.failed(), vs.failed())

	return b.String()
}
