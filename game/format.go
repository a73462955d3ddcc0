package game

import (
	"fmt"
	"strings"
)

// Render projects the board to text, one line per row. It never mutates the
// board, and closed cells render identically whatever they hide.
func (board *Board) Render(mode FormatMode) string {
	var out strings.Builder

	if mode == Annotated {
		board.renderAnnotated(&out)
		return out.String()
	}

	for row := 0; row < board.height; row++ {
		for col := 0; col < board.width; col++ {
			out.WriteString(board.cellAt(Coord{row, col}).glyph(mode))
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// renderAnnotated writes the plain projection prefixed with row labels and a
// column header of last-digit indices.
func (board *Board) renderAnnotated(out *strings.Builder) {
	labelWidth := len(fmt.Sprint(board.height - 1))

	out.WriteString(strings.Repeat(" ", labelWidth+2))
	for col := 0; col < board.width; col++ {
		fmt.Fprint(out, col%10)
	}
	out.WriteString("\n\n")

	for row := 0; row < board.height; row++ {
		fmt.Fprintf(out, "%*d  ", labelWidth, row)
		for col := 0; col < board.width; col++ {
			out.WriteString(board.cellAt(Coord{row, col}).glyph(Plain))
		}
		out.WriteByte('\n')
	}
}

// String renders the board in Plain mode.
func (board *Board) String() string {
	return board.Render(Plain)
}
