package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aoc/cli/cmd"
	"github.com/ardnew/aoc/log"
)

// run parses args like [Run] but with config files under dir and output
// captured.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	var (
		cli      CLI
		out, msg bytes.Buffer
	)

	ctx := t.Context()

	parser, err := newParser(&cli,
		func() context.Context { return ctx },
		filepath.Join(dir, baseConfig),
		kong.Writers(&out, &msg),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	ctx = cli.context(ctx, ktx)

	cli.Log.start(ctx)

	err = ktx.Run()

	return out.String(), err
}

func TestRun_DefaultCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "1", "--example")
	if err != nil {
		t.Fatal(err)
	}

	want := "day01 Calorie Counting\n  part 1: 24000\n  part 2: 45000\n"
	if out != want {
		t.Errorf("output mismatch:\n got: %q\nwant: %q", out, want)
	}
}

func TestRun_SolveFromDataPath(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "day02.input"), []byte("A Y\nB X\nC Z\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	out, err := run(t, t.TempDir(),
		"--data-path", dir, "solve", "day2", "--part", "2", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}

	var res cmd.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}

	if len(res.Answers) != 1 || res.Answers[0].Value != 12 {
		t.Errorf("unexpected result: %+v", res)
	}

	if res.Input != filepath.Join(dir, "day02.input") {
		t.Errorf("input = %q", res.Input)
	}
}

func TestRun_List(t *testing.T) {
	out, err := run(t, t.TempDir(), "list")
	if err != nil {
		t.Fatal(err)
	}

	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("expected 3 lines, got %d:\n%s", lines, out)
	}
}

func TestRun_UnknownDay(t *testing.T) {
	_, err := run(t, t.TempDir(), "solve", "dy3", "--example")
	if !errors.Is(err, cmd.ErrUnknownDay) {
		t.Fatalf("error = %v, want ErrUnknownDay", err)
	}

	if !strings.Contains(err.Error(), "day03") {
		t.Errorf("expected suggestion in %q", err)
	}
}

func TestRun_InputAndExampleExclusive(t *testing.T) {
	if _, err := run(t, t.TempDir(), "1", "--example", "--input", "x"); err == nil {
		t.Error("expected --input and --example to conflict")
	}
}

func TestRun_YAMLConfig(t *testing.T) {
	dir := t.TempDir()

	data := t.TempDir()
	if err := os.WriteFile(filepath.Join(data, "day01.input"), []byte("5\n\n7"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := "data_path: " + data + "\nlog:\n  level: warn\n"
	if err := os.WriteFile(filepath.Join(dir, baseConfig+".yaml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, dir, "1", "--part", "1")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "part 1: 7") {
		t.Errorf("expected answer from configured data path, got %q", out)
	}

	if got := log.Default().Level(); got != log.LevelWarn {
		t.Errorf("log level from config = %v, want warn", got)
	}
}
