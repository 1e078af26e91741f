package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/m93a/mag-tc/pkg/types"
	"github.com/urfave/cli/v3"
)

func newChecker(c *cli.Command) (*types.Checker, error) {
	config, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.Bool("debug") {
		config.LogLevel = "debug"
	}

	level, err := config.Level()
	if err != nil {
		return nil, err
	}

	logger := newLogger(os.Stderr, level)

	checker, err := types.NewChecker(logger, config.Checker())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize checker: %w", err)
	}

	return checker, nil
}

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "magtc",
		Usage: "Explore the assignability relation over primitives, traits and functions",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "trace every decision the checker makes",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "Print every assignability relation between the built-in fixtures",
				Action: func(ctx context.Context, c *cli.Command) error {
					checker, err := newChecker(c)
					if err != nil {
						return err
					}

					f, err := newFixtures()
					if err != nil {
						return err
					}

					return printRelations(stdout, checker, f)
				},
			},
			{
				Name:      "check",
				Usage:     "Report whether one fixture is assignable to another",
				ArgsUsage: "<type> <target>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 2 {
						return fmt.Errorf("must provide exactly two fixture names")
					}

					checker, err := newChecker(c)
					if err != nil {
						return err
					}

					f, err := newFixtures()
					if err != nil {
						return err
					}

					from, to, err := resolvePair(f, c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return err
					}

					_, err = fmt.Fprintf(stdout, "%s <: %s = %t\n", from, to, checker.IsAssignableTo(from, to))
					return err
				},
			},
		},
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := newApp(os.Stdout).Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}

func resolvePair(f fixtures, from, to string) (types.Type, types.Type, error) {
	a, ok := f.lookup(from)
	if !ok {
		return nil, nil, fmt.Errorf("unknown fixture %q (known: %s)", from, strings.Join(f.names(), ", "))
	}

	b, ok := f.lookup(to)
	if !ok {
		return nil, nil, fmt.Errorf("unknown fixture %q (known: %s)", to, strings.Join(f.names(), ", "))
	}

	return a, b, nil
}
