package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"

	"github.com/solvium/sudoku/board"
)

// ErrBadSnapshot is returned when a snapshot stream cannot be decoded.
var ErrBadSnapshot = errors.New("malformed snapshot")

const snapshotVersion = 1

// Snapshot is a board state persisted to a binary stream, with its canonical
// seed for quick identification and whether the board is a complete solution.
type Snapshot struct {
	Board  board.Board
	Solved bool
}

// snapshotRaw is the cbor envelope. Cells is the 4-bit-per-cell packed board.
type snapshotRaw struct {
	Version uint8  `cbor:"1,keyasint"`
	Seed    string `cbor:"2,keyasint"`
	Solved  bool   `cbor:"3,keyasint"`
	Cells   []byte `cbor:"4,keyasint"`
}

// NewSnapshot captures the current state of b.
func NewSnapshot(b board.Board) Snapshot {
	return Snapshot{Board: b, Solved: b.Complete()}
}

// Seed returns the canonical seed of the snapshot's board.
func (s *Snapshot) Seed() string { return Seed(s.Board) }

// WriteTo serializes the snapshot: a deterministic cbor envelope carrying the
// seed and the board packed at 4 bits per cell.
func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	var packed bytes.Buffer
	bw := bitio.NewWriter(&packed)
	for i := 0; i < board.Size; i++ {
		if err := bw.WriteBits(uint64(s.Board.Cell(i)), 4); err != nil {
			return 0, err
		}
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}

	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	data, err := enc.Marshal(snapshotRaw{
		Version: snapshotVersion,
		Seed:    s.Seed(),
		Solved:  s.Solved,
		Cells:   packed.Bytes(),
	})
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadFrom deserializes a snapshot written by WriteTo.
func (s *Snapshot) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}

	dm, err := cbor.DecOptions{
		MaxArrayElements: board.Size,
		MaxMapPairs:      16,
	}.DecMode()
	if err != nil {
		return int64(len(data)), err
	}
	var raw snapshotRaw
	if err := dm.Unmarshal(data, &raw); err != nil {
		return int64(len(data)), fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if raw.Version != snapshotVersion {
		return int64(len(data)), fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, raw.Version)
	}

	cells := make([]uint8, board.Size)
	br := bitio.NewReader(bytes.NewReader(raw.Cells))
	for i := range cells {
		v, err := br.ReadBits(4)
		if err != nil {
			return int64(len(data)), fmt.Errorf("%w: packed cells too short", ErrBadSnapshot)
		}
		cells[i] = uint8(v)
	}
	b, err := board.FromCells(cells)
	if err != nil {
		return int64(len(data)), fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if got := Seed(b); got != raw.Seed {
		return int64(len(data)), fmt.Errorf("%w: seed mismatch", ErrBadSnapshot)
	}

	s.Board = b
	s.Solved = raw.Solved
	return int64(len(data)), nil
}
