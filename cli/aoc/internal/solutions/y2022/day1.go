package y2022

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
)

// Day1 sums the calories carried by each elf.
type Day1 struct {
	in puzzle.Input
}

func NewDay1(in puzzle.Input) puzzle.Puzzle { return &Day1{in: in} }

func (d *Day1) Part1(w io.Writer) error {
	elves, err := d.elves()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The elf with the most hoarded calories: %d\n", elves[0])
	return nil
}

func (d *Day1) Part2(w io.Writer) error {
	elves, err := d.elves()
	if err != nil {
		return err
	}
	total := 0
	for _, c := range elves[:min(3, len(elves))] {
		total += c
	}
	fmt.Fprintf(w, "The three richest elves have a total of %d calories.\n", total)
	return nil
}

// elves returns per-elf totals, largest first.
func (d *Day1) elves() ([]int, error) {
	lines, err := d.in.Lines()
	if err != nil {
		return nil, err
	}
	elves, err := caloriesPerElf(lines)
	if err != nil {
		return nil, err
	}
	if len(elves) == 0 {
		return nil, fmt.Errorf("no elves in input")
	}
	sort.Sort(sort.Reverse(sort.IntSlice(elves)))
	return elves, nil
}

func caloriesPerElf(lines []string) ([]int, error) {
	var elves []int
	sum, open := 0, false
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if open {
				elves = append(elves, sum)
			}
			sum, open = 0, false
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a calorie count", i+1, line)
		}
		sum += n
		open = true
	}
	if open {
		elves = append(elves, sum)
	}
	return elves, nil
}
