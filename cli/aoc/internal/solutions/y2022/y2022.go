package y2022

import "github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"

func Entries() []puzzle.Entry {
	return []puzzle.Entry{
		{Year: "Y2022", Day: "Day1", New: NewDay1},
	}
}
