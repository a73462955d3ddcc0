package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gomines/gomines/game"
)

func TestFormatModeValue(t *testing.T) {
	var mode game.FormatMode
	value := newFormatModeValue(game.Plain, &mode)

	if err := value.Set("decorative"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != game.Decorative {
		t.Errorf("mode = %v, want decorative", mode)
	}
	if value.String() != "decorative" {
		t.Errorf("String() = %q, want %q", value.String(), "decorative")
	}

	if err := value.Set("sparkly"); err == nil {
		t.Error("invalid mode should be rejected")
	}
}

func TestResolveDifficulty(t *testing.T) {
	defer func() {
		difficultyName = ""
		presetsPath = ""
	}()

	difficultyName = "medium"
	if err := resolveDifficulty(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if difficulty != game.Medium() {
		t.Errorf("difficulty = %+v, want medium", difficulty)
	}

	difficultyName = "bogus"
	presetsPath = ""
	if err := resolveDifficulty(); err == nil {
		t.Error("unknown difficulty without presets should fail")
	}

	path := filepath.Join(t.TempDir(), "presets.yaml")
	contents := []byte("tiny:\n  height: 4\n  width: 4\n  mines: 2\n")
	if err := os.WriteFile(path, contents, 0644); err != nil {
		t.Fatalf("writing presets: %v", err)
	}
	difficultyName = "tiny"
	presetsPath = path
	if err := resolveDifficulty(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if difficulty != (game.Difficulty{Height: 4, Width: 4, Mines: 2}) {
		t.Errorf("difficulty = %+v, want tiny preset", difficulty)
	}
}
