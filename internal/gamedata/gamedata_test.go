package gamedata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/mealrun/internal/entity"
	"github.com/samdwyer/mealrun/internal/world"
)

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("Failed to load levels: %v", err)
	}

	if len(levels) != 3 {
		t.Errorf("Expected 3 levels, got %d", len(levels))
	}
	if levels[0].ID != "1" {
		t.Errorf("First level id = %q, want %q", levels[0].ID, "1")
	}
}

func TestEmbeddedLevelsAreValidMaps(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("Failed to load levels: %v", err)
	}

	f := world.NewField()
	for _, l := range levels {
		if err := f.AddMap(context.Background(), l.ID, l.Rows); err != nil {
			t.Errorf("level %s (%s) rejected: %v", l.ID, l.Name, err)
		}
	}
}

func TestLoadLevelsFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "levels.json")
	content := `{"levels":[{"id":"x","name":"Tiny","rows":[["meal","player"],["wall","empty"]]}]}`
	if err := os.WriteFile(good, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	levels, err := LoadLevelsFile(good)
	if err != nil {
		t.Fatalf("LoadLevelsFile() error: %v", err)
	}
	if len(levels) != 1 || levels[0].Name != "Tiny" {
		t.Errorf("LoadLevelsFile() = %+v", levels)
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`{"levels":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLevelsFile(empty); !errors.Is(err, ErrNoLevels) {
		t.Errorf("LoadLevelsFile(empty) error = %v, want ErrNoLevels", err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"levels":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLevelsFile(broken); err == nil {
		t.Error("LoadLevelsFile(broken) should fail")
	}

	if _, err := LoadLevelsFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadLevelsFile(missing) should fail")
	}
}

func TestPaletteCoversEveryKind(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	for _, k := range []entity.Kind{entity.KindEmpty, entity.KindWall, entity.KindMeal, entity.KindEnemy, entity.KindPlayer} {
		tile := p.Lookup(k.String())
		if tile == nil {
			t.Errorf("no tile for %v", k)
			continue
		}
		if _, err := ParseColor(tile.Color); err != nil {
			t.Errorf("tile %v has bad color %q: %v", k, tile.Color, err)
		}
	}
	if p.Lookup("lava") != nil {
		t.Error("Lookup(\"lava\") should be nil")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"#00ff00", true},
		{"yellow", true},
		{"Red", true},
		{"", false},
		{"#FFF", false},
		{"#GGGGGG", false},
		{"notacolor", false},
	}

	for _, tt := range tests {
		_, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestTileDefGlyphRune(t *testing.T) {
	tests := []struct {
		glyph string
		want  rune
	}{
		{"@", '@'},
		{"·", '·'},
		{"", '?'},
	}

	for _, tt := range tests {
		d := TileDef{Glyph: tt.glyph}
		if got := d.GlyphRune(); got != tt.want {
			t.Errorf("GlyphRune(%q) = %q, want %q", tt.glyph, got, tt.want)
		}
	}
}
