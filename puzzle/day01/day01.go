// Package day01 solves "Calorie Counting": each elf's inventory is a block of
// integers, blocks are separated by blank lines, and the answers are the
// largest block total and the sum of the three largest.
package day01

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/aoc/puzzle"
)

var errNoInventories = errors.New("no inventories")

// Title is the puzzle name.
const Title = "Calorie Counting"

// TopK is the number of inventories summed in part 2.
const TopK = 3

// Example is the sample input from the puzzle description.
const Example = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000`

// Inventory is the calories of the items carried by one elf.
type Inventory []int

// Sum returns the total calories in the inventory.
func (inv Inventory) Sum() int {
	total := 0
	for _, c := range inv {
		total += c
	}

	return total
}

// Parse splits s into inventories on blank lines. Each non-blank line must
// hold a single integer. Runs of blank lines count as one separator, so no
// inventory is ever empty.
func Parse(s string) ([]Inventory, error) {
	var (
		acc []Inventory
		cur Inventory
	)

	for n, line := range puzzle.Lines(s) {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(cur) > 0 {
				acc = append(acc, cur)
				cur = nil
			}

			continue
		}

		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, &puzzle.ParseError{
				Line:   n,
				Text:   line,
				Reason: "invalid integer",
				Err:    err,
			}
		}

		cur = append(cur, v)
	}

	if len(cur) > 0 {
		acc = append(acc, cur)
	}

	return acc, nil
}

// Sums returns the total of each inventory, in input order.
func Sums(invs []Inventory) []int {
	sums := make([]int, len(invs))
	for i, inv := range invs {
		sums[i] = inv.Sum()
	}

	return sums
}

// MaxSum returns the largest inventory total.
func MaxSum(invs []Inventory) (int, error) {
	if len(invs) == 0 {
		return 0, puzzle.ErrEmptyInput.Wrap(errNoInventories)
	}

	return slices.Max(Sums(invs)), nil
}

// TopSum returns the sum of the k largest inventory totals. If there are
// fewer than k inventories, all of them are summed.
func TopSum(invs []Inventory, k int) int {
	if k <= 0 {
		return 0
	}

	sums := Sums(invs)
	slices.SortFunc(sums, func(a, b int) int { return cmp.Compare(b, a) })

	total := 0
	for _, s := range sums[:min(k, len(sums))] {
		total += s
	}

	return total
}

// Part1 parses s and returns the largest inventory total.
func Part1(s string) (int, error) {
	invs, err := Parse(s)
	if err != nil {
		return 0, err
	}

	return MaxSum(invs)
}

// Part2 parses s and returns the total of the [TopK] largest inventories.
func Part2(s string) (int, error) {
	invs, err := Parse(s)
	if err != nil {
		return 0, err
	}

	return TopSum(invs, TopK), nil
}
