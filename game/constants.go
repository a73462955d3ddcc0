package game

// CellState is the visibility of a single cell.
type CellState int

const (
	Closed CellState = iota
	Flagged
	Open
)

func (state CellState) String() string {
	switch state {
	case Closed:
		return "closed"
	case Flagged:
		return "flagged"
	case Open:
		return "open"
	}
	return "unknown"
}

// BoardState classifies the whole board.
type BoardState int

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	}
	return "unknown"
}

// FormatMode selects the glyph set used by Board.Render.
type FormatMode int

const (
	// Plain renders closed cells as C, flags as F, mines as M, zeroes as a
	// blank and counts as digits.
	Plain FormatMode = iota
	// Numeric is Plain with zeroes rendered as the digit 0.
	Numeric
	// Decorative renders with emoji glyphs.
	Decorative
	// Annotated is Plain with row and column index labels.
	Annotated
)

var FormatModes = []FormatMode{
	Plain,
	Numeric,
	Decorative,
	Annotated,
}

func (mode FormatMode) String() string {
	switch mode {
	case Plain:
		return "plain"
	case Numeric:
		return "numeric"
	case Decorative:
		return "decorative"
	case Annotated:
		return "annotated"
	}
	return "unknown"
}
