package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	logger := Make(&bytes.Buffer{})

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.Format() != FormatText {
		t.Errorf("expected default format text, got %v", logger.Format())
	}

	if logger.config.caller {
		t.Error("expected caller disabled by default")
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var logger Logger

	logger.Info("dropped")
	logger.Error("dropped")

	if logger.Level() != DefaultLevel || logger.Format() != DefaultFormat {
		t.Error("zero value logger should report defaults")
	}

	if logger.With(slog.String("k", "v")).Logger != nil {
		t.Error("With on zero value logger should stay zero")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger, string, ...slog.Attr)
		minLevel Level
		logged   bool
	}{
		{"trace at trace", (Logger).Trace, LevelTrace, true},
		{"trace at debug", (Logger).Trace, LevelDebug, false},
		{"debug at debug", (Logger).Debug, LevelDebug, true},
		{"debug at info", (Logger).Debug, LevelInfo, false},
		{"info at warn", (Logger).Info, LevelWarn, false},
		{"warn at warn", (Logger).Warn, LevelWarn, true},
		{"error at debug", (Logger).Error, LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithLevel(tt.minLevel))
			tt.logFunc(logger, "test message")

			if logged := buf.Len() > 0; logged != tt.logged {
				t.Errorf("expected logged=%v, got output %q", tt.logged, buf.String())
			}
		})
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false), WithLevel(LevelTrace))
	logger.Trace("test message", slog.String("key", "value"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if result["msg"] != "test message" || result["key"] != "value" {
		t.Errorf("unexpected record: %v", result)
	}

	if result["level"] != "TRACE" {
		t.Errorf("expected level TRACE, got %v", result["level"])
	}
}

func TestLogger_PrettyJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(true))
	logger.Info("test message", slog.Int("answer", 42))

	out := buf.String()
	if !strings.Contains(out, "\n  \"answer\": 42") {
		t.Errorf("expected indented JSON, got: %s", out)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("pretty JSON should still be valid JSON: %v", err)
	}
}

func TestLogger_Text(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		var buf bytes.Buffer
		logger := Make(&buf, WithPretty(pretty), WithTimeLayout("none"))
		logger.Info("test message", slog.String("key", "value"))

		out := buf.String()
		if !strings.Contains(out, "test message") || !strings.Contains(out, "key=value") {
			t.Errorf("pretty=%v: unexpected output %q", pretty, out)
		}
	}
}

func TestLogger_PrettyText_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithTimeLayout("none")).
		With(slog.String("day", "day03"))

	logger.Error("solve failed",
		slog.Group("error", slog.Int("record", 4), slog.Bool("fatal", true)))

	want := "ERROR solve failed day=day03 error.record=4 error.fatal=true\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithCaller(true), WithPretty(false))
	logger.Info("test message")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected caller to point at this file, got: %s", buf.String())
	}

	buf.Reset()
	Make(&buf, WithCaller(false), WithPretty(false)).Info("test message")

	if strings.Contains(buf.String(), "source") {
		t.Error("caller info included when disabled")
	}
}

func TestLogger_Wrap_KeepsBase(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
	wrapped := base.Wrap(WithLevel(LevelError))

	if wrapped.Format() != FormatJSON {
		t.Error("Wrap should keep the base format")
	}

	if base.Level() != LevelInfo {
		t.Error("Wrap must not modify the base logger")
	}

	wrapped.Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected warn to be filtered, got %q", buf.String())
	}
}

func TestLogger_ConcurrentCalls(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(true), WithTimeLayout("none"))

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("concurrent message", slog.Int("id", i))
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}
