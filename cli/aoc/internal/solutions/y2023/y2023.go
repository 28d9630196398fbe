package y2023

import "github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"

func Entries() []puzzle.Entry {
	return []puzzle.Entry{
		{Year: "Y2023", Day: "Day1", New: NewDay1},
		{Year: "Y2023", Day: "Day2", New: NewDay2},
	}
}
