package random

import (
	"testing"

	"github.com/gomines/gomines/game"
)

func TestActOpensAClosedCell(t *testing.T) {
	board, err := game.NewWithMines(3, 3, []game.Coord{{Row: 1, Col: 1}})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	director := New(99)
	director.Init(board)

	if !director.Act() {
		t.Fatal("director should open some cell")
	}

	numOpen := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell, _ := board.CellAt(game.Coord{Row: row, Col: col})
			if cell.State() == game.Open {
				numOpen++
			}
		}
	}
	if numOpen == 0 {
		t.Error("at least one cell should be open after a move")
	}
}

func TestActStopsWhenFinished(t *testing.T) {
	board, err := game.NewWithMines(1, 2, []game.Coord{{Row: 0, Col: 1}})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	if _, err := board.Open(game.Coord{Row: 0, Col: 0}); err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	if board.Status() != game.Won {
		t.Fatalf("expected won board, got %v", board.Status())
	}

	director := New(1)
	director.Init(board)
	if director.Act() {
		t.Error("director should not act on a finished board")
	}
}
