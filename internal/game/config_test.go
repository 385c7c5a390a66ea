package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.StepPeriod(); got != 800*time.Millisecond {
		t.Errorf("StepPeriod() = %v, want 800ms", got)
	}
	if got := cfg.RedrawPeriod(); got != 400*time.Millisecond {
		t.Errorf("RedrawPeriod() = %v, want 400ms", got)
	}
	if cfg.Level != "1" {
		t.Errorf("Level = %q, want %q", cfg.Level, "1")
	}
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"MEALRUN_STEP_MS", "MEALRUN_REDRAW_MS", "MEALRUN_LEVEL", "MEALRUN_LEVELS_FILE"} {
		unsetEnv(t, key)
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MEALRUN_STEP_MS", "250")
	t.Setenv("MEALRUN_REDRAW_MS", "100")
	t.Setenv("MEALRUN_LEVEL", "2")
	t.Setenv("MEALRUN_LEVELS_FILE", "/tmp/levels.json")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}
	if got := cfg.StepPeriod(); got != 250*time.Millisecond {
		t.Errorf("StepPeriod() = %v, want 250ms", got)
	}
	if got := cfg.RedrawPeriod(); got != 100*time.Millisecond {
		t.Errorf("RedrawPeriod() = %v, want 100ms", got)
	}
	if cfg.Level != "2" {
		t.Errorf("Level = %q, want %q", cfg.Level, "2")
	}
	if cfg.LevelsFile != "/tmp/levels.json" {
		t.Errorf("LevelsFile = %q", cfg.LevelsFile)
	}
}

func TestConfigFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MEALRUN_STEP_MS", "fast"},
		{"MEALRUN_STEP_MS", "0"},
		{"MEALRUN_REDRAW_MS", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := ConfigFromEnv(); err == nil {
				t.Errorf("ConfigFromEnv() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestLoadFieldEmbedded(t *testing.T) {
	field, err := LoadField(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("LoadField() error: %v", err)
	}
	if got := len(field.Levels()); got != 3 {
		t.Errorf("levels = %d, want 3", got)
	}
}

func TestLoadFieldUnknownDefaultLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "42"
	if _, err := LoadField(context.Background(), cfg); err == nil {
		t.Error("LoadField() with undefined default level should fail")
	}
}

func TestLoadFieldFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.json")
	content := `{"levels":[{"id":"1","name":"Bad","rows":[["meal","player"],["player","empty"]]}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.LevelsFile = path
	if _, err := LoadField(context.Background(), cfg); err == nil {
		t.Error("LoadField() should reject a map with two players")
	}
}
