// Package random implements a director that opens an arbitrary closed,
// unflagged cell each step. It is the fallback when smarter strategies have
// no safe move.
package random

import (
	"math/rand"

	"github.com/gomines/gomines/game"
)

type Director struct {
	board *game.Board
	rng   *rand.Rand
}

func New(seed int64) *Director {
	return &Director{rng: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
}

func (director *Director) Act() bool {
	board := director.board
	if board.Status() != game.Ongoing {
		return false
	}

	candidates := make([]game.Coord, 0, board.NumCells())
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			coord := game.Coord{Row: row, Col: col}
			cell, _ := board.CellAt(coord)
			if cell.State() == game.Closed {
				candidates = append(candidates, coord)
			}
		}
	}
	if len(candidates) == 0 {
		return false
	}

	coord := candidates[director.rng.Intn(len(candidates))]
	if _, err := board.Open(coord); err != nil {
		return false
	}
	return true
}
