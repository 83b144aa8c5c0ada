// Package day03 solves "Rucksack Reorganization": find the one item type
// shared by the two compartments of each rucksack, and the one badge shared
// by each group of three rucksacks, and sum their priorities.
package day03

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/ardnew/aoc/puzzle"
)

// Title is the puzzle name.
const Title = "Rucksack Reorganization"

// GroupSize is the number of rucksacks that share a badge.
const GroupSize = 3

// Example is the sample input from the puzzle description.
const Example = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw`

var errNoRucksacks = errors.New("no rucksacks")

// Priority returns the priority of an item type: a-z are 1-26 and A-Z are
// 27-52. It reports false for any other byte.
func Priority(item byte) (int, bool) {
	switch {
	case 'a' <= item && item <= 'z':
		return int(item-'a') + 1, true
	case 'A' <= item && item <= 'Z':
		return int(item-'A') + 27, true
	default:
		return 0, false
	}
}

// Item returns the item type with priority p, the inverse of [Priority].
func Item(p int) (byte, bool) {
	switch {
	case 1 <= p && p <= 26:
		return byte('a' + p - 1), true
	case 27 <= p && p <= 52:
		return byte('A' + p - 27), true
	default:
		return 0, false
	}
}

// ItemSet is a set of item types. Bit p is set when the item with
// priority p is present.
type ItemSet uint64

// Items returns the set of item types in s. Bytes that are not letters are
// ignored.
func Items(s string) ItemSet {
	var set ItemSet

	for i := range len(s) {
		if p, ok := Priority(s[i]); ok {
			set |= 1 << p
		}
	}

	return set
}

// Len returns the number of item types in the set.
func (s ItemSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Priorities returns the priorities in the set in ascending order.
func (s ItemSet) Priorities() []int {
	var out []int

	for p := 1; p <= 52; p++ {
		if s&(1<<p) != 0 {
			out = append(out, p)
		}
	}

	return out
}

// Strings returns the item types in the set, ordered by priority.
func (s ItemSet) Strings() []string {
	ps := s.Priorities()
	if len(ps) == 0 {
		return nil
	}

	out := make([]string, len(ps))

	for i, p := range ps {
		item, _ := Item(p)
		out[i] = string(item)
	}

	return out
}

// only returns the priority of the single item in s, or an InvariantError
// describing why s does not hold exactly one item.
func (s ItemSet) only(record int, what string) (int, error) {
	if s.Len() != 1 {
		return 0, &puzzle.InvariantError{
			Record: record,
			Items:  s.Strings(),
			Reason: what + " must share exactly one item",
		}
	}

	return s.Priorities()[0], nil
}

// Rucksack is the list of items in one rucksack, one letter per item.
type Rucksack string

// Compartments splits r into its two equal halves.
func (r Rucksack) Compartments() (string, string) {
	half := len(r) / 2

	return string(r[:half]), string(r[half:])
}

// Common returns the item types found in both compartments.
func (r Rucksack) Common() ItemSet {
	a, b := r.Compartments()

	return Items(a) & Items(b)
}

// Parse reads one rucksack per line. Lines must be non-empty, even in
// length and contain only ASCII letters. Blank lines are skipped.
func Parse(s string) ([]Rucksack, error) {
	var out []Rucksack

	for n, line := range puzzle.Lines(s) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for i := range len(line) {
			if _, ok := Priority(line[i]); !ok {
				return nil, puzzle.NewParseError(n, line,
					fmt.Sprintf("invalid item %q at column %d", line[i], i+1))
			}
		}

		if len(line)%2 != 0 {
			return nil, puzzle.NewParseError(n, line,
				"odd number of items cannot fill two compartments")
		}

		out = append(out, Rucksack(line))
	}

	if len(out) == 0 {
		return nil, puzzle.ErrEmptyInput.Wrap(errNoRucksacks)
	}

	return out, nil
}

// SumCommon returns the sum of the priorities of the item shared by the two
// compartments of each rucksack.
func SumCommon(rucksacks []Rucksack) (int, error) {
	total := 0

	for i, r := range rucksacks {
		p, err := r.Common().only(i+1, "compartments")
		if err != nil {
			return 0, err
		}

		total += p
	}

	return total, nil
}

// Badge returns the item type carried by every rucksack in group.
func Badge(group []Rucksack) ItemSet {
	if len(group) == 0 {
		return 0
	}

	common := Items(string(group[0]))
	for _, r := range group[1:] {
		common &= Items(string(r))
	}

	return common
}

// SumBadges returns the sum of the badge priorities of each consecutive
// group of [GroupSize] rucksacks.
func SumBadges(rucksacks []Rucksack) (int, error) {
	total := 0
	group := 0

	for chunk := range slices.Chunk(rucksacks, GroupSize) {
		group++

		if len(chunk) < GroupSize {
			return 0, &puzzle.InvariantError{
				Record: group,
				Reason: fmt.Sprintf("group has %d rucksacks, want %d",
					len(chunk), GroupSize),
			}
		}

		p, err := Badge(chunk).only(group, "group")
		if err != nil {
			return 0, err
		}

		total += p
	}

	return total, nil
}

// Part1 parses s and sums the priorities of the misplaced items.
func Part1(s string) (int, error) {
	rs, err := Parse(s)
	if err != nil {
		return 0, err
	}

	return SumCommon(rs)
}

// Part2 parses s and sums the priorities of the group badges.
func Part2(s string) (int, error) {
	rs, err := Parse(s)
	if err != nil {
		return 0, err
	}

	return SumBadges(rs)
}
