// Package cli contains the command line interface for aoc.
//
// # Usage
//
//	aoc [flags] <day> [--part N] [--input FILE | --example] [-o text|json|yaml]
//	aoc list
//	aoc check answers.yaml
//
// Solving is the default command, so "aoc 1 --example" solves both parts
// of day 1 using the puzzle's example input. Without --input or --example
// the input is read from <day>.input in ./data or a directory listed in
// --data-path (also AOC_DATA_PATH).
//
// # Configuration
//
// Flags may also be set from config.json or config.yaml in the user
// configuration directory ($XDG_CONFIG_HOME/aoc on Linux). Command-line
// flags take precedence.
//
//	log:
//	  level: debug
//	  pretty: false
//	data-path: /home/me/aoc/inputs
//
// # Logging Options
//
//   - --log-level: trace, debug, info, warn or error
//   - --log-format: text or json
//   - --log-time-layout: a named layout (RFC3339, kitchen, none, ...) or a
//     Go time layout
//   - --[no-]log-caller, --[no-]log-pretty
//
// Logs are written to stderr. Answers are written to stdout.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: allocs, block, clock, cpu, goroutine, heap, mem, mutex,
//     thread or trace
//   - --pprof-dir: profile output directory (default: <cache dir>/aoc/pprof)
package cli
