// Command burrow reads a burrow diagram and prints the minimum energy needed to
// sort it, for the board as given (part 1) and for its extended form (part 2).
//
// Usage:
//
//	burrow [-f input.txt] [-part 0|1|2] [-path] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/search"
)

var errBadPart = errors.New("burrow: -part must be 0, 1 or 2")

func main() {
	log := logrus.New()
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.WithError(err).Fatal("burrow failed")
	}
}

// puzzle is one board to solve, labelled with its part number.
type puzzle struct {
	part  int
	board burrow.Board
}

func run(args []string, out io.Writer, log *logrus.Logger) error {
	flags := flag.NewFlagSet("burrow", flag.ContinueOnError)
	file := flags.String("f", "input.txt", "input file")
	part := flags.Int("part", 0, "part to solve: 1, 2 or 0 for both")
	showPath := flags.Bool("path", false, "print an optimal move sequence")
	verbose := flags.Bool("v", false, "log search progress")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	b, err := readBoard(*file)
	if err != nil {
		return err
	}
	puzzles, err := selectParts(b, *part)
	if err != nil {
		return err
	}

	results := make([]*search.Result, len(puzzles))
	g, ctx := errgroup.WithContext(context.Background())
	for i, p := range puzzles {
		i, p := i, p
		g.Go(func() error {
			res, err := search.Solve(p.board,
				search.WithContext(ctx),
				search.WithReturnPath(),
				search.WithLogger(log.WithField("part", p.part)),
			)
			if err != nil {
				return fmt.Errorf("part %d: %w", p.part, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, p := range puzzles {
		fmt.Fprintf(out, "Part %d: %d\n", p.part, results[i].Cost)
		if !*showPath {
			continue
		}
		for _, m := range results[i].Path {
			fmt.Fprintf(out, "  %-10s %6d\n", m, m.Cost())
		}
	}

	return nil
}

func readBoard(name string) (burrow.Board, error) {
	f, err := os.Open(name)
	if err != nil {
		return burrow.Board{}, err
	}
	defer f.Close()

	b, err := burrow.Parse(f)
	if err != nil {
		return burrow.Board{}, fmt.Errorf("%s: %w", name, err)
	}

	return b, nil
}

// selectParts derives the boards of the requested parts from the input.
// Part 1 is the depth-2 board, part 2 the depth-4 one; whichever the input is
// not gets folded or extended.
func selectParts(b burrow.Board, part int) ([]puzzle, error) {
	if part < 0 || part > 2 {
		return nil, fmt.Errorf("%w: got %d", errBadPart, part)
	}

	var puzzles []puzzle
	if part != 2 {
		small := b
		if b.Depth() == burrow.ExtendedDepth {
			folded, err := burrow.Fold(b)
			if err != nil {
				return nil, fmt.Errorf("part 1: %w", err)
			}
			small = folded
		}
		puzzles = append(puzzles, puzzle{part: 1, board: small})
	}
	if part != 1 {
		large := b
		if b.Depth() == burrow.BaseDepth {
			ext, err := burrow.Extend(b)
			if err != nil {
				return nil, fmt.Errorf("part 2: %w", err)
			}
			large = ext
		}
		puzzles = append(puzzles, puzzle{part: 2, board: large})
	}

	return puzzles, nil
}
