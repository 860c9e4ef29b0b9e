// Package board implements the 9x9 sudoku board and its geometric queries.
//
// A Board is a value type; assigning one copies all 81 cells, which is what
// the solver relies on for branch snapshots. All query functions are pure.
package board

import (
	"errors"
	"fmt"
)

// Size is the number of cells on the board.
const Size = 81

// ErrMalformed is returned when raw cell input cannot form a valid board.
var ErrMalformed = errors.New("malformed board")

// Board holds the 81 cell values in row-major order (index = 9*row + col).
// A cell holds 0 when unassigned, 1..9 when assigned.
type Board [Size]uint8

// FromCells validates raw input and returns it as a Board. The input must
// hold exactly 81 values, each in 0..9.
func FromCells(cells []uint8) (Board, error) {
	var b Board
	if len(cells) != Size {
		return b, fmt.Errorf("%w: expected %d cells, got %d", ErrMalformed, Size, len(cells))
	}
	for i, v := range cells {
		if v > 9 {
			return b, fmt.Errorf("%w: cell %d holds %d, want 0..9", ErrMalformed, i, v)
		}
		b[i] = v
	}
	return b, nil
}

// Cell returns the value at index i.
func (b *Board) Cell(i int) uint8 { return b[i] }

// SetCell assigns value v at index i.
func (b *Board) SetCell(i int, v uint8) { b[i] = v }

// Clone returns an independent copy of the board.
func (b *Board) Clone() Board { return *b }

// Complete reports whether every cell is assigned.
func (b *Board) Complete() bool {
	for _, v := range b {
		if v == 0 {
			return false
		}
	}
	return true
}
