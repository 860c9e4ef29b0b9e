package solver

import "github.com/solvium/sudoku/board"

// branch is one candidate move in the search: try value at pos on the owned
// snapshot. cut is the size of pos's free set when the branch was created and
// depth the number of moves applied along this lineage. The snapshot holds
// the board state before the move and is owned exclusively by the branch.
type branch struct {
	pos   uint8
	value uint8
	cut   uint8
	depth uint32
	snap  board.Board
}

// frontier orders not-yet-explored branches: smallest cut first (most
// constrained cell), then largest depth (finish near-complete lineages
// before broadening), then smallest position and value for reproducibility.
type frontier []*branch

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.cut != b.cut {
		return a.cut < b.cut
	}
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	if a.pos != b.pos {
		return a.pos < b.pos
	}
	return a.value < b.value
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*branch)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return b
}
