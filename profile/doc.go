// Package profile provides optional runtime profiling for aoc.
//
// Profiling is built on [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Profiler.Start] returns a no-op and [Modes] is empty.
//
// # Modes
//
// allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread and trace.
// Use [Modes] to list them programmatically.
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	defer p.Start().Stop()
//
// Profile files are named after the mode (cpu.pprof, mem.pprof, ...) and can
// be inspected with
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// With the tag, [net/http/pprof] is also linked in so an embedding program
// can expose /debug/pprof/ on its own HTTP server.
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
