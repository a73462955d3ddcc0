package game

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/gomines/gomines/util/collections"
)

// OpenOutcome distinguishes what an Open call actually did.
type OpenOutcome int

const (
	// Opened means at least one cell changed visibility.
	Opened OpenOutcome = iota
	// FlagGuarded means the target cell was flagged, so nothing was opened.
	FlagGuarded
	// NoChange means the target was already open and no cascade fired.
	NoChange
	// GameOver means the board was already won or lost.
	GameOver
)

func (outcome OpenOutcome) String() string {
	switch outcome {
	case Opened:
		return "opened"
	case FlagGuarded:
		return "flag-guarded"
	case NoChange:
		return "no-change"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// OpenResult reports an Open call: the target cell after the call, the final
// board status, and every coordinate whose visibility changed, in the order
// the cascade opened them.
type OpenResult struct {
	Cell    Cell
	Outcome OpenOutcome
	Status  BoardState

	Opened        []Coord
	FlagsTouched  int
	MinesExploded int
}

// Open opens the cell at coord and runs the cascade to its fixpoint.
//
// The cascade pops coordinates off a worklist. A flagged coordinate is only
// counted in FlagsTouched. A closed one is opened. An open non-mine cell
// whose adjacent-mine count is zero, or equals its number of flagged
// neighbors, enqueues all of its not-yet-open neighbors. A mine opened
// through a misplaced flag stops its own branch from expanding, but the rest
// of the worklist still runs to completion, so independent branches finish
// deterministically before Lost is reported.
func (board *Board) Open(coord Coord) (OpenResult, error) {
	if !board.inBounds(coord) {
		return OpenResult{}, fmt.Errorf("open %v: %w", coord, ErrOutOfBounds)
	}

	result := OpenResult{Status: board.Status()}
	if result.Status != Ongoing {
		result.Cell = *board.cellAt(coord)
		result.Outcome = GameOver
		return result, nil
	}
	if board.cellAt(coord).state == Flagged {
		result.Cell = *board.cellAt(coord)
		result.Outcome = FlagGuarded
		result.FlagsTouched = 1
		return result, nil
	}

	var queue deque.Deque[Coord]
	queue.PushBack(coord)
	enqueued := make(collections.Set[Coord])
	enqueued.Add(coord)

	for queue.Len() > 0 {
		current := queue.PopFront()
		cell := board.cellAt(current)

		if cell.state == Flagged {
			result.FlagsTouched++
			continue
		}

		if cell.state == Closed {
			cell.state = Open
			result.Opened = append(result.Opened, current)

			if cell.isMine {
				board.exploded++
				result.MinesExploded++
				// The frontier stops growing from an exploded mine.
				continue
			}
			board.opened++
		} else if cell.isMine {
			continue
		}

		if cell.numMines == 0 || board.countFlaggedNeighbors(current) == cell.numMines {
			for _, neighbor := range board.neighbors(current) {
				if board.cellAt(neighbor).state != Open && !enqueued.Contains(neighbor) {
					enqueued.Add(neighbor)
					queue.PushBack(neighbor)
				}
			}
		}
	}

	result.Cell = *board.cellAt(coord)
	result.Status = board.Status()
	if len(result.Opened) == 0 {
		result.Outcome = NoChange
	}
	return result, nil
}
