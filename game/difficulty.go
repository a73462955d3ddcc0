package game

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Difficulty bundles board dimensions with a mine count.
type Difficulty struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Mines  int `yaml:"mines"`
}

func Easy() Difficulty {
	return Difficulty{Height: 9, Width: 9, Mines: 10}
}

func Medium() Difficulty {
	return Difficulty{Height: 16, Width: 16, Mines: 40}
}

func Hard() Difficulty {
	return Difficulty{Height: 16, Width: 30, Mines: 99}
}

// FromDensity derives a mine count from a fraction of the cell count.
func FromDensity(height, width int, density float64) Difficulty {
	return Difficulty{
		Height: height,
		Width:  width,
		Mines:  int(float64(height*width) * density),
	}
}

// New creates a board with this difficulty, drawing mines from src.
func (difficulty Difficulty) New(src MineSource) (*Board, error) {
	return New(difficulty.Height, difficulty.Width, difficulty.Mines, src)
}

// LoadPresets parses a yaml mapping of preset name to difficulty, e.g.
//
//	beginner:
//	  height: 9
//	  width: 9
//	  mines: 10
func LoadPresets(in []byte) (map[string]Difficulty, error) {
	presets := make(map[string]Difficulty)
	if err := yaml.Unmarshal(in, &presets); err != nil {
		return nil, fmt.Errorf("parsing difficulty presets: %w", err)
	}
	return presets, nil
}
