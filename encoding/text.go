package encoding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solvium/sudoku/board"
)

// ErrBadFormat is returned when a text board cannot be parsed.
var ErrBadFormat = errors.New("malformed board text")

// Format renders a board as nine lines of nine 3-wide cells, zeros included.
func Format(b board.Board) string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			fmt.Fprintf(&sb, "%3d", b.Cell(board.Index(row, col)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads a board from text. Digits 1-9 assign cells, '0', '.' and '_'
// leave them blank, whitespace is ignored, anything else is an error. The
// text must describe exactly 81 cells in row-major order.
func Parse(s string) (board.Board, error) {
	var b board.Board
	i := 0
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			if i >= board.Size {
				return board.Board{}, fmt.Errorf("%w: more than %d cells", ErrBadFormat, board.Size)
			}
			b.SetCell(i, uint8(r-'0'))
			i++
		case r == '0' || r == '.' || r == '_':
			if i >= board.Size {
				return board.Board{}, fmt.Errorf("%w: more than %d cells", ErrBadFormat, board.Size)
			}
			i++
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '|':
			// ignore layout characters
		default:
			return board.Board{}, fmt.Errorf("%w: unexpected %q", ErrBadFormat, r)
		}
	}
	if i != board.Size {
		return board.Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrBadFormat, i, board.Size)
	}
	return b, nil
}
