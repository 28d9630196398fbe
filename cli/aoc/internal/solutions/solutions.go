// Package solutions is the static registration table of every puzzle the
// runner knows about. Adding a year means adding its Entries here.
package solutions

import (
	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/solutions/y2022"
	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/solutions/y2023"
)

// Entries returns the registration table in a fixed order.
func Entries() []puzzle.Entry {
	var all []puzzle.Entry
	all = append(all, y2022.Entries()...)
	all = append(all, y2023.Entries()...)
	return all
}

// Registry builds the registry from Entries.
func Registry() (*puzzle.Registry, error) {
	return puzzle.Build(Entries()...)
}
