// Package encoding implements the board encodings consumed by the CLI: the
// run-length coordinate list, its base64 seed wrapping, the text rendering,
// and a binary snapshot file format. The solving engine itself never depends
// on any of these.
package encoding

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/solvium/sudoku/board"
)

var (
	// ErrBadList is returned for a coordinate list the state machine
	// cannot replay onto a board.
	ErrBadList = errors.New("malformed coordinate list")

	// ErrBadSeed is returned for a seed that is not base64 or does not
	// decode to a valid coordinate list.
	ErrBadSeed = errors.New("malformed seed")
)

// Flatten compresses a board into its coordinate list: for each value 1..9
// present on the board, in ascending order, the value, its occurrence count,
// and the ascending cell indices where it occurs.
func Flatten(b board.Board) []uint8 {
	var list []uint8
	for v := uint8(1); v <= 9; v++ {
		var indices []uint8
		for i := 0; i < board.Size; i++ {
			if b.Cell(i) == v {
				indices = append(indices, uint8(i))
			}
		}
		if len(indices) == 0 {
			continue
		}
		list = append(list, v, uint8(len(indices)))
		list = append(list, indices...)
	}
	return list
}

// Unflatten replays a coordinate list onto an empty board. The list is read
// by a three-state machine: a value, then its occurrence count, then that
// many cell indices.
func Unflatten(list []uint8) (board.Board, error) {
	const (
		ready = iota
		size
		reading
	)
	var b board.Board
	state := ready
	var cur, remaining uint8
	for k, v := range list {
		switch state {
		case ready:
			if v < 1 || v > 9 {
				return board.Board{}, fmt.Errorf("%w: value %d at offset %d", ErrBadList, v, k)
			}
			cur = v
			state = size
		case size:
			if v == 0 {
				return board.Board{}, fmt.Errorf("%w: zero run length at offset %d", ErrBadList, k)
			}
			remaining = v
			state = reading
		case reading:
			if int(v) >= board.Size {
				return board.Board{}, fmt.Errorf("%w: cell index %d at offset %d", ErrBadList, v, k)
			}
			b.SetCell(int(v), cur)
			remaining--
			if remaining == 0 {
				state = ready
			}
		}
	}
	if state != ready {
		return board.Board{}, fmt.Errorf("%w: truncated list", ErrBadList)
	}
	return b, nil
}

// Seed returns the canonical seed of a board: the base64 encoding of its
// coordinate list.
func Seed(b board.Board) string {
	return base64.StdEncoding.EncodeToString(Flatten(b))
}

// FromSeed decodes a seed back into a board.
func FromSeed(seed string) (board.Board, error) {
	list, err := base64.StdEncoding.DecodeString(seed)
	if err != nil {
		return board.Board{}, fmt.Errorf("%w: %v", ErrBadSeed, err)
	}
	b, err := Unflatten(list)
	if err != nil {
		return board.Board{}, fmt.Errorf("%w: %v", ErrBadSeed, err)
	}
	return b, nil
}
