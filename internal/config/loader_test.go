package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchGoDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("embedded YAML and DefaultInvadersConfig() differ:\n yaml: %+v\n go:   %+v", cfg, DefaultInvadersConfig())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
invaders:
  count: 3
ship:
  fire_cooldown: 100ms
timing:
  fps_limit: 0
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Invaders.Count != 3 {
		t.Errorf("Invaders.Count = %d, expected 3", cfg.Invaders.Count)
	}
	if cfg.Ship.FireCooldown != 100*time.Millisecond {
		t.Errorf("Ship.FireCooldown = %v, expected 100ms", cfg.Ship.FireCooldown)
	}
	if cfg.Timing.FramePeriod() != 0 {
		t.Errorf("fps_limit 0 should disable the cap, got period %v", cfg.Timing.FramePeriod())
	}

	// Untouched keys keep their defaults
	if cfg.Invaders.Radius != 15 {
		t.Errorf("Invaders.Radius = %v, expected default 15", cfg.Invaders.Radius)
	}
	if cfg.Field.Width != 800 {
		t.Errorf("Field.Width = %v, expected default 800", cfg.Field.Width)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "field:\n  width: 0\n"},
		{"negative radius", "invaders:\n  radius: -1\n"},
		{"negative count", "invaders:\n  count: -5\n"},
		{"negative fps", "timing:\n  fps_limit: -1\n"},
		{"negative cooldown", "ship:\n  fire_cooldown: -1s\n"},
		{"zero hold window", "input:\n  hold_window: 0s\n"},
		{"zero repeat delay", "input:\n  repeat_delay: 0s\n"},
		{"unknown control", "input:\n  keys:\n    jump: [k]\n"},
		{"control without keys", "input:\n  keys:\n    fire: []\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseKeyOverrides(t *testing.T) {
	cfg, err := Parse([]byte("input:\n  keys:\n    fire: [\" \", k]\n    Left: [h]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := cfg.Input.Keys["fire"]; len(got) != 2 || got[0] != " " || got[1] != "k" {
		t.Errorf("fire keys = %q, expected [\" \" \"k\"]", got)
	}
	if got := cfg.Input.Keys["Left"]; len(got) != 1 || got[0] != "h" {
		t.Errorf("left keys = %q, expected [\"h\"]", got)
	}
	if cfg.Input.HoldWindow != 180*time.Millisecond {
		t.Errorf("hold window should keep its default, got %v", cfg.Input.HoldWindow)
	}
	if cfg.Input.RepeatDelay != 550*time.Millisecond {
		t.Errorf("repeat delay should keep its default, got %v", cfg.Input.RepeatDelay)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("field: [unclosed"))
	if err == nil {
		t.Fatal("malformed YAML should fail")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("syntax errors should not be reported as validation errors")
	}
}

func TestFramePeriod(t *testing.T) {
	tc := TimingConfig{FPSLimit: 30}
	if got := tc.FramePeriod(); got != time.Second/30 {
		t.Errorf("FramePeriod() = %v, expected %v", got, time.Second/30)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("invaders:\n  points: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Invaders.Points != 100 {
		t.Errorf("Invaders.Points = %d, expected 100", cfg.Invaders.Points)
	}
}

func TestLoadInvadersMissingCustomPath(t *testing.T) {
	_, _, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a wrapped not-exist error, got %v", err)
	}
}

func TestLoadInvadersFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Error("embedded fallback should equal the defaults")
	}
}

func TestLoadInvadersLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, localConfigPath), []byte("invaders:\n  count: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if source != localConfigPath {
		t.Errorf("source = %q, expected %q", source, localConfigPath)
	}
	if cfg.Invaders.Count != 9 {
		t.Errorf("Invaders.Count = %d, expected 9", cfg.Invaders.Count)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultInvadersConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("marshalled config should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Error("marshalled defaults should decode to the same config")
	}
}
