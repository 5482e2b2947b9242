package main

import (
	"errors"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/cryptonstudio/crypton-avl/console"
)

func main() {
	log.SetPrefix("avl: ")
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		orders     []string
		printTree  bool
		check      bool
		seed       []int
		stats      bool
	)

	cmd := &cobra.Command{
		Use:   "avl",
		Short: "Toggle numbers in an AVL tree",
		Long: `Reads numbers greater than 0 one per line. A number already in the tree
is deleted from it, any other number is inserted. A number less than 1 ends
the session.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("order") {
				config.Orders = orders
			}
			if flags.Changed("print") {
				config.Print = printTree
			}
			if flags.Changed("check") {
				config.Check = check
			}
			if flags.Changed("seed") {
				config.Seed = seed
			}
			return run(config, cmd.InOrStdin(), cmd.OutOrStdout(), stats)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringSliceVarP(&orders, "order", "o", nil, "traversal printed after every change: pre, in or post (repeatable)")
	flags.BoolVarP(&printTree, "print", "p", false, "draw the tree after every change")
	flags.BoolVar(&check, "check", false, "verify tree invariants after every change")
	flags.IntSliceVar(&seed, "seed", nil, "numbers toggled before reading input")
	flags.BoolVar(&stats, "stats", false, "print session statistics on exit")
	return cmd
}

var errCheckFailed = errors.New("tree check failed")

func run(config *Config, in io.Reader, out io.Writer, stats bool) error {
	orders, err := config.TraversalOrders()
	if err != nil {
		return err
	}
	printer := NewPrinter(out, log.Default(), orders, config.Print, config.Check)
	c := console.NewConsole(printer, out, config.Prompt)

	for _, value := range config.Seed {
		if _, err := c.Toggle(value); err != nil {
			return err
		}
	}
	if err := c.Run(in); err != nil {
		return err
	}
	if stats {
		PrintStatistics(out, c.Stats(), c.Tree())
	}
	if err := printer.Err(); err != nil {
		return errors.Join(errCheckFailed, err)
	}
	return nil
}
