package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadAnswers(t *testing.T) {
	src := `
day01:
  input: day01.input
  expect:
    - part1 == 24000
day02:
  example: true
  expect: [part1 == 15, part2 == 12]
`

	got, err := LoadAnswers(t.Context(), strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]Expectation{
		"day01": {Input: "day01.input", Expect: []string{"part1 == 24000"}},
		"day02": {Example: true, Expect: []string{"part1 == 15", "part2 == 12"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadAnswers mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAnswers_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"unknown field", "day01:\n  expected: [part1 == 1]\n"},
		{"not a map", "- day01\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAnswers(t.Context(), strings.NewReader(tt.src))
			if !errors.Is(err, ErrAnswers) {
				t.Errorf("error = %v, want ErrAnswers", err)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	env := map[string]any{"day": "day01", "part1": 24000, "part2": 45000}

	tests := []struct {
		src    string
		pass   bool
		errors bool
	}{
		{"part1 == 24000", true, false},
		{"part2 > part1 && day == 'day01'", true, false},
		{"part1 == 1", false, false},
		{"part1 + 1", false, true},
		{"part3 == 0", false, true},
		{"part1 ==", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			pass, msg := evaluate(tt.src, env)
			if pass != tt.pass || (msg != "") != tt.errors {
				t.Errorf("evaluate(%q) = %v, %q", tt.src, pass, msg)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "d1.txt", "1\n2\n\n10\n")

	answers := map[string]Expectation{
		"day01": {Input: "d1.txt", Expect: []string{"part1 == 10", "part2 == 13"}},
		"2":     {Example: true, Expect: []string{"part1 == 15", "part2 == 0"}},
	}

	got, err := Verify(t.Context(), answers, dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []Verdict{
		{Day: "day01", Assertion: "part1 == 10", Pass: true},
		{Day: "day01", Assertion: "part2 == 13", Pass: true},
		{Day: "day02", Assertion: "part1 == 15", Pass: true},
		{Day: "day02", Assertion: "part2 == 0", Pass: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Verify mismatch (-want +got):\n%s", diff)
	}
}

func TestVerify_SolveFailureFailsAssertions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", "vJrwpWtwJgWrhcsFMMfFFhF\n")

	answers := map[string]Expectation{
		"day03": {Input: "bad.txt", Expect: []string{"part1 > 0", "true"}},
	}

	got, err := Verify(t.Context(), answers, dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 verdicts, got %d", len(got))
	}

	for _, v := range got {
		if v.Pass || !strings.Contains(v.Error, "parse error") {
			t.Errorf("verdict %+v should fail with a parse error", v)
		}
	}
}

func TestVerify_UnknownDay(t *testing.T) {
	answers := map[string]Expectation{"day17": {Example: true}}

	if _, err := Verify(context.Background(), answers, "."); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("error = %v, want ErrUnknownDay", err)
	}
}

func TestCheck_Run(t *testing.T) {
	dir := t.TempDir()

	pass := writeFile(t, dir, "pass.yaml",
		"day01:\n  example: true\n  expect: [part1 == 24000, part2 == 45000]\n")
	fail := writeFile(t, dir, "fail.yaml",
		"day03:\n  example: true\n  expect: [part1 == 157, part2 == 71]\n")

	var buf bytes.Buffer

	c := Check{File: pass, Output: FormatText}
	if err := c.Run(testContext(t, &buf)); err != nil {
		t.Fatalf("passing check failed: %v", err)
	}

	want := "" +
		"PASS day01 part1 == 24000\n" +
		"PASS day01 part2 == 45000\n" +
		"2 passed, 0 failed\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch:\n got: %q\nwant: %q", got, want)
	}

	buf.Reset()

	c = Check{File: fail, Output: FormatText}
	if err := c.Run(testContext(t, &buf)); !errors.Is(err, ErrCheckFailed) {
		t.Errorf("error = %v, want ErrCheckFailed", err)
	}

	if !strings.Contains(buf.String(), "FAIL day03 part2 == 71") {
		t.Errorf("expected failing verdict in output:\n%s", buf.String())
	}
}

func TestVerify_OrdersByDay(t *testing.T) {
	answers := map[string]Expectation{
		"day1":  {Example: true, Expect: []string{"part1 == 24000"}},
		"day03": {Example: true, Expect: []string{"part1 == 157"}},
		"2":     {Example: true, Expect: []string{"part1 == 15"}},
	}

	got, err := Verify(t.Context(), answers, ".")
	if err != nil {
		t.Fatal(err)
	}

	days := make([]string, len(got))
	for i, v := range got {
		days[i] = v.Day
	}

	if diff := cmp.Diff([]string{"day01", "day02", "day03"}, days); diff != "" {
		t.Errorf("verdict order mismatch (-want +got):\n%s", diff)
	}
}

func TestVerify_DuplicateDay(t *testing.T) {
	answers := map[string]Expectation{
		"1":     {Example: true, Expect: []string{"part1 == 24000"}},
		"day01": {Example: true, Expect: []string{"part2 == 45000"}},
	}

	_, err := Verify(t.Context(), answers, ".")
	if !errors.Is(err, ErrAnswers) {
		t.Fatalf("error = %v, want ErrAnswers", err)
	}

	if !strings.Contains(err.Error(), "day01") {
		t.Errorf("error %q should name the day", err)
	}
}

func TestCheck_Run_ReportsInDayOrder(t *testing.T) {
	path := writeFile(t, t.TempDir(), "answers.yaml",
		"day03:\n  example: true\n  expect: [part2 == 70]\n"+
			"day1:\n  example: true\n  expect: [part1 == 24000]\n")

	var buf bytes.Buffer

	if err := (&Check{File: path, Output: FormatText}).Run(testContext(t, &buf)); err != nil {
		t.Fatal(err)
	}

	want := "" +
		"PASS day01 part1 == 24000\n" +
		"PASS day03 part2 == 70\n" +
		"2 passed, 0 failed\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch:\n got: %q\nwant: %q", got, want)
	}
}
