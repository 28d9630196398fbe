package inputs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
)

// DataDir is the per-year subdirectory holding input files.
const DataDir = "inputdata"

// Locator maps puzzle keys to input files under Root.
type Locator struct {
	Root string
	// Sample selects day<N>_test.txt instead of day<N>.txt.
	Sample bool
}

// For returns the input file for k.
//   - actual: <root>/<year>/inputdata/day<N>.txt
//   - sample: <root>/<year>/inputdata/day<N>_test.txt
func (l Locator) For(k puzzle.Key) File {
	name := "day" + strconv.Itoa(k.Day)
	if l.Sample {
		name += "_test"
	}
	root := l.Root
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	return File{path: filepath.Join(root, strconv.Itoa(k.Year), DataDir, name+".txt")}
}

// Input adapts For to the dispatcher's locator signature.
func (l Locator) Input(k puzzle.Key) puzzle.Input { return l.For(k) }

// File is a lazily read input file.
type File struct {
	path string
}

// NewFile wraps an explicit path.
func NewFile(path string) File { return File{path: path} }

func (f File) Path() string { return f.path }

// Text returns the whole file.
func (f File) Text() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// Lines returns the file split into lines without trailing newlines.
func (f File) Lines() ([]string, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	defer fh.Close()
	var lines []string
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input %s: %w", f.path, err)
	}
	return lines, nil
}

// Text is an in-memory Input, used for puzzles fed from a string.
type Text string

func (t Text) Text() (string, error) { return string(t), nil }

func (t Text) Lines() ([]string, error) {
	s := strings.TrimSuffix(strings.ReplaceAll(string(t), "\r\n", "\n"), "\n")
	if s == "" {
		return nil, nil
	}
	return strings.Split(s, "\n"), nil
}
