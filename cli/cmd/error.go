package cmd

import "github.com/ardnew/aoc/puzzle"

var (
	ErrUnknownDay  = puzzle.NewError("unknown day")
	ErrUnknownPart = puzzle.NewError("unknown part")
	ErrNoInput     = puzzle.NewError("no puzzle input")
	ErrSolve       = puzzle.NewError("failed to solve")
	ErrAnswers     = puzzle.NewError("invalid answers file")
	ErrCheckFailed = puzzle.NewError("check failed")
	ErrJSONMarshal = puzzle.NewError("marshal JSON")
	ErrYAMLMarshal = puzzle.NewError("marshal YAML")
)
