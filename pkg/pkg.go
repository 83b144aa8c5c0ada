//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// version is the semantic version of the aoc module embedded at build time.
// It is printed by the CLI when users pass --version.
//
//go:embed VERSION
var version string

// Version returns the embedded version with surrounding whitespace removed.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "aoc"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Advent of Code 2022 puzzle solvers"
	// Year is the Advent of Code event the puzzles belong to.
	Year = 2022
)
