package puzzle

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Puzzle is one day's solution. Each phase reads its own input and writes its
// answers to w.
type Puzzle interface {
	Part1(w io.Writer) error
	Part2(w io.Writer) error
}

// Input is the raw puzzle input a Puzzle is constructed with.
type Input interface {
	Lines() ([]string, error)
	Text() (string, error)
}

// Factory builds a fresh Puzzle for a single run.
type Factory func(in Input) Puzzle

// Key identifies a puzzle by year and day.
type Key struct {
	Year int
	Day  int
}

// YearLabel returns the Y<year> grouping label.
func (k Key) YearLabel() string { return "Y" + strconv.Itoa(k.Year) }

// DayLabel returns the Day<day> label.
func (k Key) DayLabel() string { return "Day" + strconv.Itoa(k.Day) }

func (k Key) String() string { return k.YearLabel() + "/" + k.DayLabel() }

// ParseYearLabel extracts the year from a label such as "Y2023".
func ParseYearLabel(label string) (int, error) {
	return parseLabel(label, "Y")
}

// ParseDayLabel extracts the day from a label such as "Day7".
func ParseDayLabel(label string) (int, error) {
	return parseLabel(label, "Day")
}

func parseLabel(label, prefix string) (int, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(label), prefix)
	if !ok || rest == "" {
		return 0, fmt.Errorf("label %q does not match %s<n>", label, prefix)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("label %q does not match %s<n>", label, prefix)
	}
	return n, nil
}

// Entry is one row of the static registration table.
type Entry struct {
	Year string // Y<year>
	Day  string // Day<day>
	New  Factory
}

// Descriptor is a registered puzzle. It is immutable once built.
type Descriptor struct {
	Key Key
	New Factory
}
