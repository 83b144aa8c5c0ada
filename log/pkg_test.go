package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer
	defaultLog = Make(&buf)
	Config(WithLevel(LevelDebug), WithFormat(FormatJSON), WithPretty(false))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARN", "warn message"},
		{"Error", Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			for _, want := range []string{tt.msg, tt.level, `"key":"value"`} {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestPackage_Caller(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer
	defaultLog = Make(&buf, WithCaller(true), WithFormat(FormatJSON), WithPretty(false))

	Info("where")

	if !strings.Contains(buf.String(), "pkg_test.go") {
		t.Errorf("expected caller to be this file, got: %s", buf.String())
	}
}
