package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenthands/advent/internal/input"
	"github.com/agenthands/advent/pkg/lexer"
)

func grammarNames() []string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newTokensCmd(a *app) *cobra.Command {
	var (
		name   string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of an input",
		Long: `Tokenize a file (or standard input) with one of the input grammars and
print one token per line with its 1-based position. --pretty prints the
canonical re-rendering instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := grammars[name]
			if !ok {
				return fmt.Errorf("unknown grammar %q (known: %s)", name, strings.Join(grammarNames(), ", "))
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := input.Read(path)
			if err != nil {
				return err
			}
			toks, err := lexer.Tokenize(g, src)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if pretty {
				fmt.Fprintln(w, lexer.Format(g, toks))
				return nil
			}
			for _, t := range toks {
				fmt.Fprintf(w, "%d:%d\t%v\n", t.Line+1, t.Col+1, t)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "grammar", "g", "", "Grammar name")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Print the canonical rendering")
	_ = cmd.MarkFlagRequired("grammar")
	return cmd
}
