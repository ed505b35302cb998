package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/advent/internal/input"
	"github.com/agenthands/advent/internal/report"
	"github.com/agenthands/advent/pkg/puzzle"
)

// parts returns the parts selected by a --part flag, 0 meaning both.
func parts(n int) ([]puzzle.Part, error) {
	if n == 0 {
		return []puzzle.Part{puzzle.PartOne, puzzle.PartTwo}, nil
	}
	p, err := puzzle.ParsePart(n)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{p}, nil
}

// run solves the selected parts of one day on src.
func (a *app) run(ctx context.Context, s puzzle.Solver, ps []puzzle.Part, src string) []report.Result {
	out := make([]report.Result, 0, len(ps))
	for _, p := range ps {
		start := time.Now()
		ans, err := s.Solve(ctx, p, src)
		r := report.Result{
			Day:     s.Day(),
			Title:   s.Title(),
			Part:    p,
			Answer:  ans,
			Elapsed: time.Since(start),
			Err:     err,
		}
		if err != nil {
			a.logger.Error("solve failed", zap.Int("day", s.Day()), zap.Stringer("part", p), zap.Error(err))
		} else {
			a.logger.Debug("solved", zap.Int("day", s.Day()), zap.Stringer("part", p),
				zap.Int64("answer", ans), zap.Duration("elapsed", r.Elapsed))
		}
		out = append(out, r)
	}
	return out
}

func printResults(w io.Writer, results []report.Result) error {
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("day %d %v: %w", r.Day, r.Part, r.Err)
		}
		fmt.Fprintf(w, "day %d %v: %d\n", r.Day, r.Part, r.Answer)
	}
	return nil
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		day, part int
		path      string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one day",
		Long: `Solve one day from its input file. Without --input the file is looked up
under the configured input directory; "-" reads standard input.`,
		Example: "  advent solve --day 4 --part 2 --input day04.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.registry.Lookup(day)
			if err != nil {
				return err
			}
			ps, err := parts(part)
			if err != nil {
				return err
			}
			if path == "" {
				path = a.cfg.InputPath(day)
			}
			src, err := input.Read(path)
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), a.run(cmd.Context(), s, ps, src))
		},
	}
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Day to solve")
	cmd.Flags().IntVarP(&part, "part", "p", 0, "Part to solve (1 or 2, default both)")
	cmd.Flags().StringVarP(&path, "input", "i", "", "Input file")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}
