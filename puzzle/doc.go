// Package puzzle holds what the daily solvers share: reading and trimming
// puzzle input, iterating over its lines, and the error taxonomy every
// solver reports through.
//
// # Errors
//
// Failures fall into four kinds, each with a sentinel usable with
// [errors.Is]:
//
//   - [ErrReadInput]: the input could not be read.
//   - [ErrParse]: a line does not match the day's grammar. The concrete
//     value is a [*ParseError] carrying the line number and text.
//   - [ErrEmptyInput]: there are no records where at least one is required.
//   - [ErrInvariant]: a record breaks a guarantee of the puzzle input, such
//     as a rucksack whose compartments share more than one item. The
//     concrete value is an [*InvariantError].
//
// All of them implement [slog.LogValuer] so they render as structured
// fields when logged.
package puzzle
