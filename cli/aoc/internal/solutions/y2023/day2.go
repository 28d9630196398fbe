package y2023

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
)

// RGB counts cubes by colour.
type RGB struct {
	Red, Green, Blue int
}

// Within reports whether every colour of c fits inside limit.
func (c RGB) Within(limit RGB) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

func (c RGB) Power() int { return c.Red * c.Green * c.Blue }

// Game is one line of the cube game record.
type Game struct {
	ID   int
	Sets []RGB
}

// MinViable is the smallest bag that could have produced every set.
func (g Game) MinViable() RGB {
	var m RGB
	for _, s := range g.Sets {
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}
	return m
}

// Day2 checks cube game records against a bag limit.
type Day2 struct {
	in        puzzle.Input
	Threshold RGB
}

func NewDay2(in puzzle.Input) puzzle.Puzzle {
	return &Day2{in: in, Threshold: RGB{Red: 12, Green: 13, Blue: 14}}
}

func (d *Day2) Part1(w io.Writer) error {
	games, err := d.games()
	if err != nil {
		return err
	}
	sum := 0
	for _, g := range games {
		possible := true
		for _, s := range g.Sets {
			if !s.Within(d.Threshold) {
				possible = false
				break
			}
		}
		if possible {
			sum += g.ID
		}
	}
	fmt.Fprintf(w, "Result: %d\n", sum)
	return nil
}

func (d *Day2) Part2(w io.Writer) error {
	games, err := d.games()
	if err != nil {
		return err
	}
	sum := 0
	for _, g := range games {
		sum += g.MinViable().Power()
	}
	fmt.Fprintf(w, "Result: %d\n", sum)
	return nil
}

func (d *Day2) games() ([]Game, error) {
	lines, err := d.in.Lines()
	if err != nil {
		return nil, err
	}
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}

// ParseGame parses "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' in %q", line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("missing game id in %q", line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("bad game id %q", idText)
	}
	g := Game{ID: id}
	for _, set := range strings.Split(body, ";") {
		var c RGB
		for _, draw := range strings.Split(set, ",") {
			fields := strings.Fields(draw)
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("bad draw %q", strings.TrimSpace(draw))
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return Game{}, fmt.Errorf("bad count in %q", strings.TrimSpace(draw))
			}
			switch fields[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, fmt.Errorf("unknown colour %q", fields[1])
			}
		}
		g.Sets = append(g.Sets, c)
	}
	return g, nil
}
