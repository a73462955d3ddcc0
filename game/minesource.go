package game

import "math/rand"

// MineSource produces candidate mine coordinates during construction. Board
// placement draws from it until enough distinct cells are mined, so a source
// only has to be uniform, not duplicate-free.
//
// Injecting the source keeps layouts reproducible: tests pass a seeded
// RandMineSource and get the same board every run.
type MineSource interface {
	Sample(height, width int) Coord
}

// RandMineSource draws uniform coordinates from a math/rand generator.
type RandMineSource struct {
	rng *rand.Rand
}

func NewRandMineSource(seed int64) *RandMineSource {
	return &RandMineSource{rng: rand.New(rand.NewSource(seed))}
}

func (src *RandMineSource) Sample(height, width int) Coord {
	return Coord{
		Row: src.rng.Intn(height),
		Col: src.rng.Intn(width),
	}
}
