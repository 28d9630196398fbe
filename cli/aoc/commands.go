package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/config"
	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/dispatch"
	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/inputs"
	"github.com/trygve-baerland/adventofcode-sub001/cli/aoc/internal/puzzle"
)

const banner = "Welcome to the Advent of Code solutions!"

func newRootCmd(registry *puzzle.Registry, cfg config.Config, stdout io.Writer, logger log.FieldLogger) *cobra.Command {
	var (
		day    int
		year   int
		sample bool
	)
	cmd := &cobra.Command{
		Use:   "aoc -d <day> [-y <year>]",
		Short: "Run both parts of an Advent of Code puzzle and time them",
		Long: `aoc runs one registered puzzle and reports how long each part took.

Inputs are read from <input_root>/<year>/inputdata/day<N>.txt, or
day<N>_test.txt with --sample. Use "aoc list" to see every registered puzzle.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("day") {
				return fmt.Errorf("required flag -d/--day not set")
			}
			fmt.Fprintln(stdout, banner)
			d := &dispatch.Dispatcher{
				Registry: registry,
				Inputs:   inputs.Locator{Root: cfg.InputRoot, Sample: sample}.Input,
				Out:      stdout,
				Log:      logger,
			}
			_, err := d.Run(dispatch.Request{Year: year, Day: day})
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.Flags().IntVarP(&day, "day", "d", 0, "day to run (required)")
	cmd.Flags().IntVarP(&year, "year", "y", cfg.DefaultYear, "year to select the day from")
	cmd.Flags().BoolVar(&sample, "sample", false, "read the day<N>_test.txt input instead")
	cmd.AddCommand(newListCmd(registry, stdout))
	return cmd
}

func newListCmd(registry *puzzle.Registry, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered puzzle",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return puzzle.WriteListing(stdout, registry)
		},
	}
}
