// Package sudoku solves 9x9 sudoku puzzles.
//
// The engine combines two phases:
//   - deterministic constraint propagation (naked and hidden singles) run to
//     a fixpoint, see the solver package;
//   - when propagation stalls, a best-first branch-and-bound search over
//     independent board snapshots, most constrained cells first.
//
// The board package holds the 81-cell grid and its geometric queries, and
// the encoding package the coordinate-list, seed and snapshot formats used
// by the sudoku command.
package sudoku

import "github.com/blang/semver/v4"

// Version of the sudoku module
var Version = semver.MustParse("0.1.0")
