package game

import "testing"

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		name       string
		difficulty Difficulty
		want       Difficulty
	}{
		{"easy", Easy(), Difficulty{Height: 9, Width: 9, Mines: 10}},
		{"medium", Medium(), Difficulty{Height: 16, Width: 16, Mines: 40}},
		{"hard", Hard(), Difficulty{Height: 16, Width: 30, Mines: 99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.difficulty != tt.want {
				t.Errorf("%s = %+v, want %+v", tt.name, tt.difficulty, tt.want)
			}
		})
	}
}

func TestFromDensity(t *testing.T) {
	tests := []struct {
		density float64
		mines   int
	}{
		{0.0, 0},
		{0.1, 10},
		{0.5, 50},
	}
	for _, tt := range tests {
		got := FromDensity(10, 10, tt.density)
		if got.Mines != tt.mines {
			t.Errorf("FromDensity(10, 10, %v).Mines = %d, want %d", tt.density, got.Mines, tt.mines)
		}
	}
}

func TestDifficultyNew(t *testing.T) {
	board, err := Easy().New(NewRandMineSource(7))
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	if board.Height() != 9 || board.Width() != 9 || board.NumMines() != 10 {
		t.Errorf("board = %dx%d/%d, want 9x9/10",
			board.Height(), board.Width(), board.NumMines())
	}
}

func TestLoadPresets(t *testing.T) {
	in := []byte(`
beginner:
  height: 9
  width: 9
  mines: 10
dense:
  height: 8
  width: 8
  mines: 20
`)
	presets, err := LoadPresets(in)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}
	if presets["dense"] != (Difficulty{Height: 8, Width: 8, Mines: 20}) {
		t.Errorf("dense preset = %+v", presets["dense"])
	}

	if _, err := LoadPresets([]byte("beginner: [not a difficulty")); err == nil {
		t.Error("malformed yaml should fail to parse")
	}
}
