package dispatch

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
)

const separator = "==========================="

// ErrPuzzleFailed marks an error raised inside a puzzle phase.
var ErrPuzzleFailed = errors.New("puzzle execution failed")

// Request is the parsed command-line selection.
type Request struct {
	Year int
	Day  int
}

// Key returns the registry key for the request.
func (r Request) Key() puzzle.Key { return puzzle.Key{Year: r.Year, Day: r.Day} }

// PhaseResult records how long a completed phase took.
type PhaseResult struct {
	Phase   string
	Elapsed time.Duration
}

// PhaseError wraps a puzzle failure with the phase it happened in.
type PhaseError struct {
	Key   puzzle.Key
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Key, e.Phase, ErrPuzzleFailed, e.Err)
}

func (e *PhaseError) Unwrap() []error { return []error{ErrPuzzleFailed, e.Err} }

// Dispatcher runs registered puzzles.
type Dispatcher struct {
	Registry *puzzle.Registry
	// Inputs locates the input for a key. A nil Inputs hands puzzles a nil Input.
	Inputs func(puzzle.Key) puzzle.Input
	Out    io.Writer
	Log    logrus.FieldLogger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Run looks up req and runs Part1 then Part2. Lookup failures are returned
// before any phase starts; a phase failure stops the run immediately.
func (d *Dispatcher) Run(req Request) ([]PhaseResult, error) {
	key := req.Key()
	desc, err := d.Registry.Lookup(key)
	if err != nil {
		return nil, err
	}
	log := d.logger().WithFields(logrus.Fields{"year": key.Year, "day": key.Day})
	log.Debug("dispatching puzzle")

	var in puzzle.Input
	if d.Inputs != nil {
		in = d.Inputs(key)
	}
	p := desc.New(in)
	phases := []struct {
		name string
		run  func(io.Writer) error
	}{
		{"Part 1", p.Part1},
		{"Part 2", p.Part2},
	}

	results := make([]PhaseResult, 0, len(phases))
	for _, ph := range phases {
		fmt.Fprintf(d.Out, "%s:\n", ph.name)
		start := d.now()
		if err := ph.run(d.Out); err != nil {
			return results, &PhaseError{Key: key, Phase: ph.name, Err: err}
		}
		elapsed := d.now().Sub(start)
		fmt.Fprintf(d.Out, "Finished in %d ms\n", elapsed.Milliseconds())
		fmt.Fprintln(d.Out, separator)
		log.WithFields(logrus.Fields{"phase": ph.name, "elapsed": elapsed}).Debug("phase finished")
		results = append(results, PhaseResult{Phase: ph.name, Elapsed: elapsed})
	}
	return results, nil
}

func (d *Dispatcher) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Dispatcher) logger() logrus.FieldLogger {
	if d.Log != nil {
		return d.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
