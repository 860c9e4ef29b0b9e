// Command sudoku solves a 9x9 sudoku board given on the command line in one
// of three forms: a base64 seed, a run-length coordinate list, or the full
// 81-cell board.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solvium/sudoku/board"
	"github.com/solvium/sudoku/encoding"
	"github.com/solvium/sudoku/logger"
	"github.com/solvium/sudoku/solver"
)

var (
	fSeed        string
	fList        []int
	fBoard       []int
	fVerbose     bool
	fTasks       int
	fMaxBranches uint64
)

const heartbeatInterval = 50000

var rootCmd = &cobra.Command{
	Use:           "sudoku",
	Short:         "sudoku solves 9x9 sudoku puzzles",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&fSeed, "seed", "s", "", "base64 board state")
	rootCmd.Flags().IntSliceVarP(&fList, "list", "l", nil, "flattened list-based board state")
	rootCmd.Flags().IntSliceVarP(&fBoard, "board", "b", nil, "full list-based board state")
	rootCmd.Flags().BoolVarP(&fVerbose, "verbose", "v", false, "show solver steps")
	rootCmd.Flags().IntVar(&fTasks, "tasks", 0, "parallel expansion workers (0 = all CPUs)")
	rootCmd.Flags().Uint64Var(&fMaxBranches, "max-branches", 0, "abort after this many search branches (0 = unbounded)")
	rootCmd.MarkFlagsMutuallyExclusive("seed", "list", "board")
	rootCmd.MarkFlagsOneRequired("seed", "list", "board")
}

func run(cmd *cobra.Command, args []string) error {
	var (
		b    board.Board
		seed string
		err  error
	)
	switch {
	case fSeed != "":
		seed = fSeed
		b, err = encoding.FromSeed(fSeed)
	case fList != nil:
		var list []uint8
		if list, err = toBytes(fList); err == nil {
			if b, err = encoding.Unflatten(list); err == nil {
				seed = encoding.Seed(b)
			}
		}
	default:
		var cells []uint8
		if cells, err = toBytes(fBoard); err == nil {
			if b, err = board.FromCells(cells); err == nil {
				seed = encoding.Seed(b)
			}
		}
	}
	if err != nil {
		return err
	}

	if fSeed == "" {
		fmt.Printf("Game seed is %s\n", seed)
	}

	log := logger.Logger()
	if fVerbose {
		log = log.Level(zerolog.TraceLevel)
		fmt.Println("Printing board indices")
		for row := 0; row < 9; row++ {
			for col := 0; col < 9; col++ {
				fmt.Printf("%3d", board.Index(row, col))
			}
			fmt.Println()
		}
		fmt.Println("---")
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	fmt.Print(encoding.Format(b))

	opts := []solver.Option{
		solver.WithLogger(log),
		solver.WithProgress(heartbeatInterval, func(p solver.Progress) {
			log.Info().
				Uint64("branches", p.Branches).
				Int("frontier", p.Frontier).
				Uint32("depth", p.Depth).
				Msg("still searching")
		}),
	}
	if fTasks > 0 {
		opts = append(opts, solver.WithNbTasks(fTasks))
	}
	if fMaxBranches > 0 {
		opts = append(opts, solver.WithMaxBranches(fMaxBranches))
	}

	solved, stats, err := solver.Solve(context.Background(), b, opts...)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			fmt.Println("Finished solver, puzzle is unsolvable.")
		}
		return err
	}

	fmt.Println("Finished solver, puzzle is solved.")
	fmt.Print(encoding.Format(solved))
	if fVerbose {
		fmt.Printf("rounds=%d assigned=%d branches=%d\n", stats.Rounds, stats.Assigned, stats.Branches)
	}
	return nil
}

// toBytes narrows CLI integers, leaving the semantic checks to the decoders.
func toBytes(in []int) ([]uint8, error) {
	out := make([]uint8, len(in))
	for i, v := range in {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("value %d out of range", v)
		}
		out[i] = uint8(v)
	}
	return out, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
