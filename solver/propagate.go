// Package solver implements the two-phase sudoku solving engine: deterministic
// constraint propagation to a fixpoint, then a best-first branch-and-bound
// search over board snapshots when propagation alone cannot finish.
package solver

import (
	"github.com/rs/zerolog"

	"github.com/solvium/sudoku/board"
)

// PropagateRound applies one round of deductions to b in place and returns
// the number of cells newly assigned. A round runs two rules:
//
//  1. naked singles over all 81 cells in row-major order: any unassigned cell
//     whose free set has exactly one member gets it;
//  2. hidden singles per row 0-8, then per column 0-8, then per region in
//     board.RegionStarts order: a value missing from an area that only one
//     cell of the area can hold is assigned there.
//
// Assignments commit immediately, so later checks in the same round see them.
func PropagateRound(b *board.Board, log zerolog.Logger) int {
	assigned := 0

	for i := 0; i < board.Size; i++ {
		if b.Cell(i) != 0 {
			continue
		}
		free := b.Free(i)
		if free.Count() == 1 {
			v, _ := free.NextSet(1)
			b.SetCell(i, uint8(v))
			assigned++
			log.Trace().Int("cell", i).Uint("value", v).Msg("naked single")
		}
	}

	for row := 0; row < 9; row++ {
		assigned += hiddenSingles(b, board.Row, board.Index(row, 0), log)
	}
	for col := 0; col < 9; col++ {
		assigned += hiddenSingles(b, board.Column, col, log)
	}
	for _, start := range board.RegionStarts {
		assigned += hiddenSingles(b, board.Region, start, log)
	}

	return assigned
}

// hiddenSingles applies rule 2 to one area instance. Candidate positions are
// collected for the whole area first, then every value with exactly one
// candidate is committed, values in ascending order.
func hiddenSingles(b *board.Board, area board.Area, start int, log zerolog.Logger) int {
	missing := b.Missing(area, start)
	var candidates [10][]int
	for _, pos := range areaCells(area, start) {
		if b.Cell(pos) != 0 {
			continue
		}
		free := b.Free(pos)
		for v, ok := free.NextSet(1); ok; v, ok = free.NextSet(v + 1) {
			if missing.Test(v) {
				candidates[v] = append(candidates[v], pos)
			}
		}
	}
	assigned := 0
	for v := 1; v <= 9; v++ {
		if len(candidates[v]) == 1 {
			b.SetCell(candidates[v][0], uint8(v))
			assigned++
			log.Trace().Int("cell", candidates[v][0]).Int("value", v).Msg("hidden single")
		}
	}
	return assigned
}

// areaCells returns the nine cell indices of the area starting at start, in
// the scan order the queries use.
func areaCells(area board.Area, start int) [9]int {
	var cells [9]int
	switch area {
	case board.Row:
		for j := 0; j < 9; j++ {
			cells[j] = start + j
		}
	case board.Column:
		for j := 0; j < 9; j++ {
			cells[j] = 9*j + start
		}
	case board.Region:
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				cells[3*j+k] = start + 9*j + k
			}
		}
	}
	return cells
}

// Fixpoint runs PropagateRound until a round assigns nothing or the board is
// complete. It returns the number of rounds run and cells assigned.
func Fixpoint(b *board.Board, log zerolog.Logger) (rounds, assigned int) {
	for !b.Complete() {
		rounds++
		n := PropagateRound(b, log)
		assigned += n
		if n == 0 {
			break
		}
		log.Debug().Int("round", rounds).Int("assigned", n).Msg("propagation round")
	}
	return rounds, assigned
}
