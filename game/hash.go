package game

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Equal reports full state equality: identical dimensions, identical mine
// layout and identical per-cell visibility. Equal boards are interchangeable
// for every read operation.
func (board *Board) Equal(other *Board) bool {
	if board.height != other.height || board.width != other.width {
		return false
	}
	for i := range board.cells {
		if board.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash digests the same state Equal compares, so equal boards hash
// identically. Callers can use it to memoize or deduplicate board states.
func (board *Board) Hash() uint64 {
	digest := xxhash.New()

	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[:4], uint32(board.height))
	binary.LittleEndian.PutUint32(dims[4:], uint32(board.width))
	digest.Write(dims[:])

	buf := make([]byte, 0, len(board.cells))
	for _, cell := range board.cells {
		b := byte(cell.state) | cell.numMines<<2
		if cell.isMine {
			b |= 1 << 7
		}
		buf = append(buf, b)
	}
	digest.Write(buf)

	return digest.Sum64()
}
