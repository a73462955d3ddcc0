package game

import "fmt"

// Coord addresses a cell by (row, column), 0-indexed and row-major.
type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

// Cell is a single grid position: content fixed at construction, visibility
// mutated through Board.Open and Board.ToggleFlag.
type Cell struct {
	state    CellState
	isMine   bool
	numMines uint8
}

// State returns the cell's visibility.
func (cell Cell) State() CellState {
	return cell.state
}

// IsMine reports whether the cell contains a mine.
func (cell Cell) IsMine() bool {
	return cell.isMine
}

// NumMines returns the number of mines among the cell's neighbors.
// Always 0 for mine cells.
func (cell Cell) NumMines() uint8 {
	return cell.numMines
}

func (cell Cell) String() string {
	if cell.isMine {
		return fmt.Sprintf("Cell(%v, mine)", cell.state)
	}
	return fmt.Sprintf("Cell(%v, %d)", cell.state, cell.numMines)
}

// glyph maps a cell to its rendered representation. Closed and flagged cells
// render the same regardless of content, so mine positions never leak.
func (cell Cell) glyph(mode FormatMode) string {
	switch cell.state {
	case Closed:
		if mode == Decorative {
			return "🟪"
		}
		return "C"
	case Flagged:
		if mode == Decorative {
			return "🟨"
		}
		return "F"
	}

	switch {
	case cell.isMine:
		if mode == Decorative {
			return "🟥"
		}
		return "M"
	case cell.numMines == 0:
		switch mode {
		case Numeric:
			return "0"
		case Decorative:
			return "🟩"
		default:
			return " "
		}
	default:
		if mode == Decorative {
			return decorativeNumbers[cell.numMines]
		}
		return string(rune('0' + cell.numMines))
	}
}

var decorativeNumbers = [9]string{
	"🟩", "1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣",
}
