// Package cmd implements the aoc subcommands.
//
// Every registered puzzle is a [Day]: a canonical name such as "day01", a
// title, the puzzle's example input and one [Part] per half of the puzzle.
// [Lookup] resolves user spellings ("1", "01", "day1") to a Day and
// suggests close matches for names it does not know.
//
// Commands:
//
//   - [Solve] runs one or both parts of a day and prints the answers.
//   - [List] prints the registered days.
//   - [Check] solves the days named in a YAML answers file and evaluates
//     each expected-answer assertion in it.
//
// Results are printed to the kong context's stdout as styled text, JSON or
// YAML. Diagnostics go through package log.
package cmd
