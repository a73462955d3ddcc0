// Package singlepoint implements the classic single-point Minesweeper
// strategy: each open numbered cell is examined on its own. When its number
// is satisfied by flags, the remaining neighbors are safe to open; when its
// remaining mines exactly fill its closed neighbors, those neighbors are all
// mines and get flagged.
package singlepoint

import (
	"github.com/gomines/gomines/game"
)

type Director struct {
	board *game.Board
}

func New() *Director {
	return &Director{}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
}

// Act makes one deterministic move: either flags every neighbor of a cell
// whose closed neighbors must all be mines, or opens a cell whose flags
// already satisfy its number. Returns false when no cell yields either
// inference, which includes the very first move of a game.
func (director *Director) Act() bool {
	board := director.board
	if board.Status() != game.Ongoing {
		return false
	}

	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			coord := game.Coord{Row: row, Col: col}
			cell, _ := board.CellAt(coord)
			if cell.State() != game.Open || cell.NumMines() == 0 {
				continue
			}

			closed, flagged := director.neighborStates(coord)
			switch {
			case len(flagged) == int(cell.NumMines()) && len(closed) > 0:
				// Flags satisfy the number; the rest of the neighbors are
				// safe. Reopening the cell chords them all open.
				if _, err := board.Open(coord); err == nil {
					return true
				}
			case len(closed) > 0 && len(closed) == int(cell.NumMines())-len(flagged):
				// Every closed neighbor must be a mine.
				for _, mine := range closed {
					if _, err := board.ToggleFlag(mine); err != nil {
						return false
					}
				}
				return true
			}
		}
	}
	return false
}

// neighborStates partitions the in-bounds neighbors of coord into closed
// (unflagged) and flagged coordinates.
func (director *Director) neighborStates(coord game.Coord) (closed []game.Coord, flagged []game.Coord) {
	board := director.board
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			neighbor := game.Coord{Row: coord.Row + dr, Col: coord.Col + dc}
			cell, err := board.CellAt(neighbor)
			if err != nil {
				continue
			}
			switch cell.State() {
			case game.Closed:
				closed = append(closed, neighbor)
			case game.Flagged:
				flagged = append(flagged, neighbor)
			}
		}
	}
	return closed, flagged
}
