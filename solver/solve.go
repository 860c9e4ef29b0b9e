package solver

import (
	"context"
	"errors"

	"github.com/solvium/sudoku/board"
)

var (
	// ErrUnsolvable is returned when the search frontier empties without a
	// complete board: the puzzle has no solution reachable by this
	// procedure. It is an expected outcome, not a crash.
	ErrUnsolvable = errors.New("puzzle is unsolvable")

	// ErrBudget is returned when the WithMaxBranches budget runs out.
	ErrBudget = errors.New("branch budget exhausted")
)

// Stats carries observational counters from one Solve call. They never
// influence the solving outcome.
type Stats struct {
	Rounds      int    // propagation rounds run, across all branches
	Assigned    int    // cells assigned by propagation
	Branches    uint64 // branches popped from the frontier
	MaxFrontier int    // largest frontier size seen
}

// Progress is handed to the WithProgress callback.
type Progress struct {
	Branches uint64
	Frontier int
	Depth    uint32
}

// Solve returns a fully assigned board consistent with b's givens, or an
// error. It first runs propagation to a fixpoint; if the board is still
// incomplete it hands off to the branch-and-bound search. On failure the
// returned board is the zero value, never a partial result.
func Solve(ctx context.Context, b board.Board, opts ...Option) (board.Board, Stats, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return board.Board{}, Stats{}, err
	}
	log := cfg.Logger

	var stats Stats
	stats.Rounds, stats.Assigned = Fixpoint(&b, log)
	if b.Complete() {
		log.Debug().Int("rounds", stats.Rounds).Msg("solved by propagation alone")
		return b, stats, nil
	}

	log.Debug().
		Int("rounds", stats.Rounds).
		Int("assigned", stats.Assigned).
		Msg("propagation stalled, starting search")

	s := &scheduler{cfg: cfg}
	solved, err := s.run(ctx, &b, &stats)
	if err != nil {
		return board.Board{}, stats, err
	}
	return solved, stats, nil
}
