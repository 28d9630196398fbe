package y2023

import (
	"fmt"
	"io"
	"strings"

	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
)

// Day1 recovers calibration values from the first and last digit of each line.
type Day1 struct {
	in puzzle.Input
}

func NewDay1(in puzzle.Input) puzzle.Puzzle { return &Day1{in: in} }

func (d *Day1) Part1(w io.Writer) error { return d.solve(w, false) }

func (d *Day1) Part2(w io.Writer) error { return d.solve(w, true) }

func (d *Day1) solve(w io.Writer, words bool) error {
	lines, err := d.in.Lines()
	if err != nil {
		return err
	}
	sum := 0
	for i, line := range lines {
		v, err := calibration(line, words)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	fmt.Fprintf(w, "Result: %d\n", sum)
	return nil
}

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// calibration scans every offset so overlapping words ("eightwo") both count.
func calibration(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		v := digitAt(line[i:], words)
		if v < 0 {
			continue
		}
		if first < 0 {
			first = v
		}
		last = v
	}
	if first < 0 {
		return 0, fmt.Errorf("no digit in %q", line)
	}
	return 10*first + last, nil
}

func digitAt(s string, words bool) int {
	if c := s[0]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if !words {
		return -1
	}
	for n, word := range digitWords {
		if strings.HasPrefix(s, word) {
			return n + 1
		}
	}
	return -1
}
