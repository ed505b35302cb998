package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/advent/internal/input"
	"github.com/agenthands/advent/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		day, part int
		path      string
		debounce  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-solve a day whenever its input file changes",
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
			w := cmd.OutOrStdout()

			solve := func(ctx context.Context) {
				src, err := input.Read(path)
				if err != nil {
					a.logger.Warn("cannot read input", zap.String("path", path), zap.Error(err))
					return
				}
				if err := printResults(w, a.run(ctx, s, ps, src)); err != nil {
					fmt.Fprintln(w, err)
				}
			}

			solve(cmd.Context())
			return watch.New(path, debounce, a.logger, solve).Run(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Day to solve")
	cmd.Flags().IntVarP(&part, "part", "p", 0, "Part to solve (1 or 2, default both)")
	cmd.Flags().StringVarP(&path, "input", "i", "", "Input file")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-solving")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}
