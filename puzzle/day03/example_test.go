package day03_test

import (
	"fmt"

	"github.com/ardnew/aoc/puzzle/day03"
)

func ExampleRucksack_Common() {
	r := day03.Rucksack("vJrwpWtwJgWrhcsFMMfFFhFp")

	fmt.Println(r.Compartments())
	fmt.Println(r.Common().Strings(), r.Common().Priorities())
	// Output:
	// vJrwpWtwJgWr hcsFMMfFFhFp
	// [p] [16]
}
