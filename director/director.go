// Package director contains auto-players that drive a game.Board through its
// public API, one move per step.
package director

import "github.com/gomines/gomines/game"

type Director interface {
	// Init points the director at the board it will play.
	Init(board *game.Board)

	// Act performs a single move. It returns false when the director has no
	// move to make, either because the game is over or because its strategy
	// found nothing to do.
	Act() bool
}
