package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/config"
	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/dispatch"
	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/solutions"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	logger := newLogger(os.Stderr)
	cfg, dir, err := config.Read()
	if err != nil {
		logger.WithError(err).Fatal("unable to load config")
	}
	setLevel(logger, cfg.LogLevel)
	logger.WithFields(log.Fields{"config_dir": dir, "input_root": cfg.InputRoot}).Debug("config loaded")

	registry, err := solutions.Registry()
	if err != nil {
		logger.WithError(err).Fatal("unable to build puzzle registry")
	}

	cmd := newRootCmd(registry, cfg, os.Stdout, logger)
	os.Exit(exitCode(cmd.Execute(), registry, os.Stderr, logger))
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return logger
}

func setLevel(logger *log.Logger, level string) {
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warnf("invalid log level %s, defaulting to info", level)
	}
}

// exitCode maps a command error to the process exit status. Unknown puzzles
// and bad flags get the listing of valid puzzles; puzzle failures are logged
// and end the run.
func exitCode(err error, registry *puzzle.Registry, stderr io.Writer, logger log.FieldLogger) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, dispatch.ErrPuzzleFailed) {
		logger.WithError(err).Error("puzzle failed")
		return exitFailure
	}
	fmt.Fprintln(stderr, err)
	fmt.Fprintln(stderr, "Available puzzles:")
	_ = puzzle.WriteListing(stderr, registry)
	return exitUsage
}
