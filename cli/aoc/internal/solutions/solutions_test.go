package solutions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
)

func TestRegistryBuilds(t *testing.T) {
	r, err := Registry()
	require.NoError(t, err)
	require.Equal(t, []puzzle.Key{
		{Year: 2022, Day: 1},
		{Year: 2023, Day: 1},
		{Year: 2023, Day: 2},
	}, r.Keys())
}

func TestEntriesHaveFactories(t *testing.T) {
	for _, e := range Entries() {
		require.NotNil(t, e.New, "%s %s", e.Year, e.Day)
	}
}
