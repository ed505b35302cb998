// Command advent solves puzzle inputs with the registered daily solvers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/advent/internal/config"
	"github.com/agenthands/advent/internal/logging"
	"github.com/agenthands/advent/pkg/lexer"
	"github.com/agenthands/advent/pkg/puzzle"
	"github.com/agenthands/advent/pkg/puzzle/almanac"
	"github.com/agenthands/advent/pkg/puzzle/camel"
	"github.com/agenthands/advent/pkg/puzzle/cards"
	"github.com/agenthands/advent/pkg/puzzle/cubes"
	"github.com/agenthands/advent/pkg/puzzle/races"
	"github.com/agenthands/advent/pkg/puzzle/schematic"
)

// app is the state shared by every subcommand once the root pre-run
// has loaded configuration.
type app struct {
	configPath string
	verbose    bool

	cfg      *config.Config
	logger   *zap.Logger
	registry *puzzle.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "advent",
		Short: "Solve line-oriented puzzle inputs",
		Long: `advent tokenizes puzzle inputs with a per-format grammar, builds typed
records from the tokens and runs the solver registered for each day.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "Configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newSolveCmd(a),
		newAllCmd(a),
		newTokensCmd(a),
		newListCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	a.logger, err = logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.registry, err = newRegistry(cfg, a.logger)
	return err
}

func newRegistry(cfg *config.Config, logger *zap.Logger) (*puzzle.Registry, error) {
	return puzzle.NewRegistry(
		cubes.Solver{
			Bag: cubes.Bag{Red: cfg.Bag.Red, Green: cfg.Bag.Green, Blue: cfg.Bag.Blue},
			Log: logger.Named("cubes"),
		},
		schematic.Solver{Log: logger.Named("schematic")},
		cards.Solver{Log: logger.Named("cards")},
		almanac.Solver{Workers: cfg.Workers, Log: logger.Named("almanac")},
		races.Solver{Log: logger.Named("races")},
		camel.Solver{Log: logger.Named("camel")},
	)
}

// grammars lists the input formats by name for the tokens command.
var grammars = map[string]*lexer.Grammar{
	cubes.Grammar.Name:     cubes.Grammar,
	schematic.Grammar.Name: schematic.Grammar,
	cards.Grammar.Name:     cards.Grammar,
	almanac.Grammar.Name:   almanac.Grammar,
	races.Grammar.Name:     races.Grammar,
	camel.Grammar.Name:     camel.Grammar,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
