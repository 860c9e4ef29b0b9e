package solver

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/solvium/sudoku/board"
)

// scheduler runs the best-first branch-and-bound search once propagation has
// stalled short of a full solution.
type scheduler struct {
	cfg Config
	f   frontier
}

// run seeds the frontier from b and explores it until a complete board is
// found or the frontier empties. Each popped branch applies its move to its
// own snapshot, propagates to a fixpoint, and on success re-seeds one depth
// further. An unsatisfiable lineage starves on its own: its stuck cell has an
// empty free set and so contributes no new branches, while sibling cells of
// the same snapshot keep branching until the lineage runs out of moves.
func (s *scheduler) run(ctx context.Context, b *board.Board, stats *Stats) (board.Board, error) {
	log := s.cfg.Logger

	heap.Init(&s.f)
	s.expand(b, 0)
	stats.MaxFrontier = s.f.Len()

	for s.f.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return board.Board{}, err
		}
		if s.cfg.MaxBranches > 0 && stats.Branches >= s.cfg.MaxBranches {
			return board.Board{}, fmt.Errorf("%w: %d branches explored", ErrBudget, stats.Branches)
		}

		br := heap.Pop(&s.f).(*branch)
		stats.Branches++

		br.snap.SetCell(int(br.pos), br.value)
		rounds, assigned := Fixpoint(&br.snap, log)
		stats.Rounds += rounds
		stats.Assigned += assigned

		if br.snap.Complete() {
			log.Debug().
				Uint64("branches", stats.Branches).
				Uint32("depth", br.depth).
				Msg("search found a complete board")
			return br.snap, nil
		}

		s.expand(&br.snap, br.depth+1)
		if n := s.f.Len(); n > stats.MaxFrontier {
			stats.MaxFrontier = n
		}

		if s.cfg.ProgressEvery > 0 && stats.Branches%s.cfg.ProgressEvery == 0 {
			s.cfg.Progress(Progress{
				Branches: stats.Branches,
				Frontier: s.f.Len(),
				Depth:    br.depth,
			})
		}
	}

	return board.Board{}, ErrUnsolvable
}

// expand pushes one branch per (unassigned cell, free value) pair of b at the
// given depth, each owning its own snapshot. Free sets are computed on up to
// Config.NbTasks workers; pushes happen afterwards in cell-then-value order,
// so the frontier contents match the sequential computation exactly.
func (s *scheduler) expand(b *board.Board, depth uint32) {
	var cells []int
	for i := 0; i < board.Size; i++ {
		if b.Cell(i) == 0 {
			cells = append(cells, i)
		}
	}

	free := make([]*bitset.BitSet, len(cells))
	if s.cfg.NbTasks > 1 {
		var g errgroup.Group
		g.SetLimit(s.cfg.NbTasks)
		for k, pos := range cells {
			k, pos := k, pos
			g.Go(func() error {
				free[k] = b.Free(pos)
				return nil
			})
		}
		// the workers only read b and cannot fail
		_ = g.Wait()
	} else {
		for k, pos := range cells {
			free[k] = b.Free(pos)
		}
	}

	for k, pos := range cells {
		cut := uint8(free[k].Count())
		for v, ok := free[k].NextSet(1); ok; v, ok = free[k].NextSet(v + 1) {
			heap.Push(&s.f, &branch{
				pos:   uint8(pos),
				value: uint8(v),
				cut:   cut,
				depth: depth,
				snap:  b.Clone(),
			})
		}
	}
}
