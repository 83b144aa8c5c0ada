// Package day02 solves "Rock Paper Scissors": score a tournament from an
// encrypted strategy guide, read either as the shapes both players choose
// or as the opponent's shape plus the outcome you want.
package day02

//go:generate go tool stringer --linecomment --type Shape,Outcome --output shape_string.go

import (
	"errors"
	"strings"

	"github.com/ardnew/aoc/puzzle"
)

// Title is the puzzle name.
const Title = "Rock Paper Scissors"

// Example is the sample input from the puzzle description.
const Example = `A Y
B X
C Z`

// Shape is a hand shape. Each shape beats its predecessor modulo 3.
type Shape int

const (
	Rock     Shape = iota // rock
	Paper                 // paper
	Scissors              // scissors
)

const numShapes = 3

// Score is the points earned for playing s: 1, 2 or 3.
func (s Shape) Score() int { return int(s) + 1 }

// Outcome is the result of a round from one player's point of view.
type Outcome int

const (
	Loss Outcome = iota // loss
	Draw                // draw
	Win                 // win
)

// Score is the points earned for o: 0, 3 or 6.
func (o Outcome) Score() int { return 3 * int(o) }

// Reverse returns the same round's outcome seen by the other player.
func (o Outcome) Reverse() Outcome { return Win - o }

// Decide returns the outcome for the player choosing mine against theirs.
func Decide(theirs, mine Shape) Outcome {
	// 0 for equal shapes, 1 if mine is the successor of theirs, 2 otherwise.
	d := (mine - theirs + numShapes) % numShapes

	return Outcome((d + 1) % numShapes)
}

// Resolve returns the shape that achieves want against theirs.
func Resolve(theirs Shape, want Outcome) Shape {
	return (theirs + Shape(want) - 1 + numShapes) % numShapes
}

// Round is one line of the guide read as both players' shapes.
type Round struct {
	Theirs Shape
	Mine   Shape
}

// Outcome returns the result of r for the guide's owner.
func (r Round) Outcome() Outcome { return Decide(r.Theirs, r.Mine) }

// Score returns the points the guide's owner earns in r.
func (r Round) Score() int { return r.Mine.Score() + r.Outcome().Score() }

// Plan is one line of the guide read as the opponent's shape and the
// outcome to aim for.
type Plan struct {
	Theirs Shape
	Want   Outcome
}

// Round returns the round that carries out p.
func (p Plan) Round() Round {
	return Round{Theirs: p.Theirs, Mine: Resolve(p.Theirs, p.Want)}
}

var errNoRounds = errors.New("no rounds")

var (
	theirColumn = map[byte]Shape{'A': Rock, 'B': Paper, 'C': Scissors}
	shapeColumn = map[byte]Shape{'X': Rock, 'Y': Paper, 'Z': Scissors}
	wantColumn  = map[byte]Outcome{'X': Loss, 'Y': Draw, 'Z': Win}
)

// ParseGuide reads each line as the opponent's shape (A, B, C) followed by
// the shape to play (X, Y, Z).
func ParseGuide(s string) ([]Round, error) {
	return parse(s, func(a, b byte) (Round, bool) {
		theirs, ok1 := theirColumn[a]
		mine, ok2 := shapeColumn[b]

		return Round{Theirs: theirs, Mine: mine}, ok1 && ok2
	})
}

// ParseStrategy reads each line as the opponent's shape (A, B, C) followed
// by the desired outcome (X lose, Y draw, Z win).
func ParseStrategy(s string) ([]Plan, error) {
	return parse(s, func(a, b byte) (Plan, bool) {
		theirs, ok1 := theirColumn[a]
		want, ok2 := wantColumn[b]

		return Plan{Theirs: theirs, Want: want}, ok1 && ok2
	})
}

// parse tokenizes s into lines of two single-byte fields and maps each pair
// with decode. Blank lines are skipped.
func parse[T any](s string, decode func(a, b byte) (T, bool)) ([]T, error) {
	var out []T

	for n, line := range puzzle.Lines(s) {
		fields := strings.Fields(line)

		switch {
		case len(fields) == 0:
			continue

		case len(fields) != 2:
			return nil, puzzle.NewParseError(n, line, "want exactly two tokens")

		case len(fields[0]) != 1 || len(fields[1]) != 1:
			return nil, puzzle.NewParseError(n, line, "tokens must be single characters")
		}

		v, ok := decode(fields[0][0], fields[1][0])
		if !ok {
			return nil, puzzle.NewParseError(n, line, "unexpected character")
		}

		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, puzzle.ErrEmptyInput.Wrap(errNoRounds)
	}

	return out, nil
}

// Score returns the total points for rounds.
func Score(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += r.Score()
	}

	return total
}

// ScoreStrategy returns the total points earned by carrying out plans.
func ScoreStrategy(plans []Plan) int {
	total := 0
	for _, p := range plans {
		total += p.Round().Score()
	}

	return total
}

// Part1 scores s read as a guide of shapes.
func Part1(s string) (int, error) {
	rounds, err := ParseGuide(s)
	if err != nil {
		return 0, err
	}

	return Score(rounds), nil
}

// Part2 scores s read as a guide of desired outcomes.
func Part2(s string) (int, error) {
	plans, err := ParseStrategy(s)
	if err != nil {
		return 0, err
	}

	return ScoreStrategy(plans), nil
}
