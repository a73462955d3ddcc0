package game

import "errors"

var (
	// ErrInvalidDimensions is returned when a board is constructed with a
	// non-positive height or width.
	ErrInvalidDimensions = errors.New("height and width must be positive")

	// ErrInvalidMineCount is returned when the requested number of mines is
	// negative, or would fill every cell of the board.
	ErrInvalidMineCount = errors.New("mine count must be in [0, height*width)")

	// ErrMineLayout is returned when an explicit mine layout contains a
	// duplicate or out-of-bounds coordinate.
	ErrMineLayout = errors.New("duplicate or out-of-bounds mine coordinate")

	// ErrOutOfBounds is returned by any operation given a coordinate outside
	// the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
