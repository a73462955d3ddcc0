package game

import "fmt"

// Board owns the grid of cells. It is created once, mutated in place by Open
// and ToggleFlag, and never resized or re-mined. A Board is not safe for
// concurrent use; callers needing that must serialize access themselves.
type Board struct {
	height, width int // in number of cells
	numMines      int
	cells         []Cell // row-major, indexed row*width+col

	numFlags int
	opened   int // safe (non-mine) cells opened so far
	exploded int // mine cells opened so far
}

// New creates a board with numMines mines placed by drawing coordinates from
// src until numMines distinct cells are mined. The same source state always
// yields the same layout.
func New(height, width, numMines int, src MineSource) (*Board, error) {
	board, err := newEmpty(height, width, numMines)
	if err != nil {
		return nil, err
	}

	minesLeft := numMines
	for minesLeft > 0 {
		coord := src.Sample(height, width)
		cell := board.cellAt(coord)
		if !cell.isMine {
			cell.isMine = true
			board.incrementNeighbors(coord)
			minesLeft--
		}
	}

	return board, nil
}

// NewWithMines creates a board with an explicit mine layout.
func NewWithMines(height, width int, mines []Coord) (*Board, error) {
	board, err := newEmpty(height, width, len(mines))
	if err != nil {
		return nil, err
	}

	for _, coord := range mines {
		if !board.inBounds(coord) {
			return nil, fmt.Errorf("mine at %v: %w", coord, ErrMineLayout)
		}
		cell := board.cellAt(coord)
		if cell.isMine {
			return nil, fmt.Errorf("mine at %v: %w", coord, ErrMineLayout)
		}
		cell.isMine = true
		board.incrementNeighbors(coord)
	}

	return board, nil
}

func newEmpty(height, width, numMines int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%dx%d board: %w", height, width, ErrInvalidDimensions)
	}
	if numMines < 0 || numMines >= height*width {
		return nil, fmt.Errorf("%d mines on %dx%d board: %w", numMines, height, width, ErrInvalidMineCount)
	}

	return &Board{
		height:   height,
		width:    width,
		numMines: numMines,
		cells:    make([]Cell, height*width),
	}, nil
}

// incrementNeighbors bumps the adjacent-mine count of every non-mine neighbor
// of a just-placed mine.
func (board *Board) incrementNeighbors(coord Coord) {
	for _, neighbor := range board.neighbors(coord) {
		cell := board.cellAt(neighbor)
		if !cell.isMine {
			cell.numMines++
		}
	}
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) NumCells() int {
	return board.height * board.width
}

func (board *Board) NumMines() int {
	return board.numMines
}

// NumFlags returns the number of currently flagged cells.
func (board *Board) NumFlags() int {
	return board.numFlags
}

// Status classifies the board. Lost as soon as any mine is open; Won once
// every safe cell is open with no mine open; Ongoing otherwise.
func (board *Board) Status() BoardState {
	switch {
	case board.exploded > 0:
		return Lost
	case board.opened == board.NumCells()-board.numMines:
		return Won
	default:
		return Ongoing
	}
}

// CellAt returns a copy of the cell at coord.
func (board *Board) CellAt(coord Coord) (Cell, error) {
	if !board.inBounds(coord) {
		return Cell{}, fmt.Errorf("cell at %v: %w", coord, ErrOutOfBounds)
	}
	return *board.cellAt(coord), nil
}

func (board *Board) inBounds(coord Coord) bool {
	return coord.Row >= 0 && coord.Row < board.height &&
		coord.Col >= 0 && coord.Col < board.width
}

func (board *Board) cellAt(coord Coord) *Cell {
	return &board.cells[coord.Row*board.width+coord.Col]
}

// neighbors returns the in-bounds neighbors of coord in row-major offset
// order. The order is fixed so cascade reports are deterministic.
func (board *Board) neighbors(coord Coord) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			neighbor := Coord{coord.Row + dr, coord.Col + dc}
			if board.inBounds(neighbor) {
				out = append(out, neighbor)
			}
		}
	}
	return out
}

func (board *Board) countFlaggedNeighbors(coord Coord) uint8 {
	count := uint8(0)
	for _, neighbor := range board.neighbors(coord) {
		if board.cellAt(neighbor).state == Flagged {
			count++
		}
	}
	return count
}

// FlagResult reports the outcome of a ToggleFlag call. Changed is false for
// the benign no-ops: flagging an open cell, or flagging on a finished board.
type FlagResult struct {
	Cell    Cell
	Changed bool
	Status  BoardState
}

// ToggleFlag switches the cell at coord between Closed and Flagged. It never
// opens a cell and never touches mine content.
func (board *Board) ToggleFlag(coord Coord) (FlagResult, error) {
	if !board.inBounds(coord) {
		return FlagResult{}, fmt.Errorf("flag %v: %w", coord, ErrOutOfBounds)
	}

	cell := board.cellAt(coord)
	result := FlagResult{Cell: *cell, Status: board.Status()}
	if result.Status != Ongoing || cell.state == Open {
		return result, nil
	}

	if cell.state == Flagged {
		cell.state = Closed
		board.numFlags--
	} else {
		cell.state = Flagged
		board.numFlags++
	}

	result.Cell = *cell
	result.Changed = true
	return result, nil
}
