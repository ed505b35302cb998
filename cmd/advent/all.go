package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/advent/internal/input"
	"github.com/agenthands/advent/internal/report"
	"github.com/agenthands/advent/pkg/puzzle"
)

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every day that has an input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []report.Result
			for _, s := range a.registry.All() {
				path := a.cfg.InputPath(s.Day())
				src, err := input.Read(path)
				if errors.Is(err, os.ErrNotExist) {
					a.logger.Info("no input, skipping", zap.Int("day", s.Day()), zap.String("path", path))
					continue
				}
				if err != nil {
					return err
				}
				results = append(results, a.run(cmd.Context(), s, []puzzle.Part{puzzle.PartOne, puzzle.PartTwo}, src)...)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, report.Table(results))
			fmt.Fprintln(w, report.Summary(results))
			for _, r := range results {
				if r.Err != nil {
					return errors.New("some parts failed")
				}
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range a.registry.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", s.Day(), s.Title())
			}
		},
	}
}
