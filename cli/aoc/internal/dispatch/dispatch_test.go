package dispatch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
)

type recorder struct {
	name  string
	calls *[]string
	fail1 error
	fail2 error
}

func (r recorder) Part1(w io.Writer) error {
	*r.calls = append(*r.calls, r.name+".Part1")
	fmt.Fprintln(w, "Result: 1")
	return r.fail1
}

func (r recorder) Part2(w io.Writer) error {
	*r.calls = append(*r.calls, r.name+".Part2")
	fmt.Fprintln(w, "Result: 2")
	return r.fail2
}

type fakeInput string

func (f fakeInput) Lines() ([]string, error) { return []string{string(f)}, nil }
func (f fakeInput) Text() (string, error)    { return string(f), nil }

// tick advances by step on every call.
func tick(step time.Duration) func() time.Time {
	t := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func newRegistry(t *testing.T, calls *[]string, keys ...puzzle.Key) *puzzle.Registry {
	t.Helper()
	r := puzzle.New()
	for _, k := range keys {
		k := k
		require.NoError(t, r.Register(k, func(puzzle.Input) puzzle.Puzzle {
			return recorder{name: k.String(), calls: calls}
		}))
	}
	return r
}

func TestRunInvokesBothPhasesInOrder(t *testing.T) {
	var calls []string
	reg := newRegistry(t, &calls, puzzle.Key{Year: 2023, Day: 1}, puzzle.Key{Year: 2023, Day: 2})
	var out bytes.Buffer
	d := &Dispatcher{Registry: reg, Out: &out, Now: tick(5 * time.Millisecond)}

	results, err := d.Run(Request{Year: 2023, Day: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"Y2023/Day1.Part1", "Y2023/Day1.Part2"}, calls)
	require.Equal(t, []PhaseResult{
		{Phase: "Part 1", Elapsed: 5 * time.Millisecond},
		{Phase: "Part 2", Elapsed: 5 * time.Millisecond},
	}, results)

	want := "Part 1:\nResult: 1\nFinished in 5 ms\n" + separator + "\n" +
		"Part 2:\nResult: 2\nFinished in 5 ms\n" + separator + "\n"
	require.Equal(t, want, out.String())
}

func TestRunEveryRegisteredPair(t *testing.T) {
	var calls []string
	keys := []puzzle.Key{{Year: 2022, Day: 1}, {Year: 2023, Day: 1}, {Year: 2023, Day: 2}}
	reg := newRegistry(t, &calls, keys...)
	d := &Dispatcher{Registry: reg, Out: io.Discard}

	for _, k := range reg.Keys() {
		calls = nil
		_, err := d.Run(Request{Year: k.Year, Day: k.Day})
		require.NoError(t, err)
		require.Equal(t, []string{k.String() + ".Part1", k.String() + ".Part2"}, calls)
	}
}

func TestRunUnknownYear(t *testing.T) {
	var calls []string
	reg := newRegistry(t, &calls, puzzle.Key{Year: 2023, Day: 1})
	var out bytes.Buffer
	d := &Dispatcher{Registry: reg, Out: &out}

	_, err := d.Run(Request{Year: 2015, Day: 1})
	require.ErrorIs(t, err, puzzle.ErrUnknownYear)
	require.Empty(t, calls)
	require.Empty(t, out.String())
}

func TestRunUnknownDay(t *testing.T) {
	var calls []string
	reg := newRegistry(t, &calls, puzzle.Key{Year: 2023, Day: 1})
	d := &Dispatcher{Registry: reg, Out: io.Discard}

	_, err := d.Run(Request{Year: 2023, Day: 3})
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)
	require.Empty(t, calls)
}

func TestRunPhaseFailureStops(t *testing.T) {
	var calls []string
	boom := errors.New("missing input")
	reg := puzzle.New()
	require.NoError(t, reg.Register(puzzle.Key{Year: 2023, Day: 1}, func(puzzle.Input) puzzle.Puzzle {
		return recorder{name: "p", calls: &calls, fail1: boom}
	}))
	d := &Dispatcher{Registry: reg, Out: io.Discard}

	results, err := d.Run(Request{Year: 2023, Day: 1})
	require.ErrorIs(t, err, ErrPuzzleFailed)
	require.ErrorIs(t, err, boom)
	require.Empty(t, results)
	require.Equal(t, []string{"p.Part1"}, calls)

	var pe *PhaseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "Part 1", pe.Phase)
	require.Equal(t, "Y2023/Day1 Part 1: puzzle execution failed: missing input", err.Error())
}

func TestRunPartTwoFailureKeepsFirstResult(t *testing.T) {
	var calls []string
	reg := puzzle.New()
	require.NoError(t, reg.Register(puzzle.Key{Year: 2023, Day: 1}, func(puzzle.Input) puzzle.Puzzle {
		return recorder{name: "p", calls: &calls, fail2: errors.New("bad line")}
	}))
	d := &Dispatcher{Registry: reg, Out: io.Discard}

	results, err := d.Run(Request{Year: 2023, Day: 1})
	require.ErrorIs(t, err, ErrPuzzleFailed)
	require.Len(t, results, 1)
	require.Equal(t, []string{"p.Part1", "p.Part2"}, calls)
}

type panicker struct{}

func (panicker) Part1(io.Writer) error { panic("index out of range") }
func (panicker) Part2(io.Writer) error { return nil }

func TestRunDoesNotRecoverPanics(t *testing.T) {
	reg := puzzle.New()
	require.NoError(t, reg.Register(puzzle.Key{Year: 2023, Day: 1}, func(puzzle.Input) puzzle.Puzzle { return panicker{} }))
	d := &Dispatcher{Registry: reg, Out: io.Discard}

	require.Panics(t, func() { _, _ = d.Run(Request{Year: 2023, Day: 1}) })
}

func TestRunPassesLocatedInput(t *testing.T) {
	var got puzzle.Input
	reg := puzzle.New()
	require.NoError(t, reg.Register(puzzle.Key{Year: 2022, Day: 4}, func(in puzzle.Input) puzzle.Puzzle {
		got = in
		var calls []string
		return recorder{calls: &calls}
	}))
	d := &Dispatcher{
		Registry: reg,
		Out:      io.Discard,
		Inputs: func(k puzzle.Key) puzzle.Input {
			return fakeInput(k.String())
		},
	}

	_, err := d.Run(Request{Year: 2022, Day: 4})
	require.NoError(t, err)
	text, err := got.Text()
	require.NoError(t, err)
	require.Equal(t, "Y2022/Day4", text)
}
