package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func flag(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestLoadYAML_Flatten(t *testing.T) {
	src := `
log:
  level: debug
  pretty: false
  time_layout: RFC3339
data_path: /tmp/a
part: 2
tags: [x, y]
`

	r, err := loadYAML(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	want := config{
		"log-level":       "debug",
		"log-pretty":      false,
		"log-time-layout": "RFC3339",
		"data-path":       "/tmp/a",
		"part":            "2",
		"tags":            "x,y",
	}
	if diff := cmp.Diff(want, r.(config)); diff != "" {
		t.Errorf("loadYAML mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	r, err := loadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}

	if len(r.(config)) != 0 {
		t.Errorf("expected empty config, got %v", r)
	}
}

func TestLoadYAML_Malformed(t *testing.T) {
	if _, err := loadYAML(strings.NewReader("log: [unterminated\n")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestConfig_Resolve(t *testing.T) {
	c := config{"log-level": "warn", "data-path": "x"}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "warn"},
		{"log_level", "warn"},
		{"data-path", "x"},
		{"log-format", nil},
	}

	for _, tt := range tests {
		got, err := c.Resolve(nil, nil, flag(tt.flag))
		if err != nil {
			t.Fatal(err)
		}

		if got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.flag, got, tt.want)
		}
	}

	if err := c.Validate(nil); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
