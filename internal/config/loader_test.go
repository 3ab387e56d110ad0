package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RustleConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRustleConfig()) {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultRustleConfig())
	}
}

func TestLoadRustleWithoutFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRustle("")
	if err != nil {
		t.Fatalf("LoadRustle: %v", err)
	}
	if cfg.Gameplay.Lives != 3 || cfg.Bubble.InitialTier != 4 {
		t.Errorf("unexpected defaults: %+v", cfg.Gameplay)
	}
}

func TestLoadRustleCustomPathOverridesSomeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "gameplay:\n  lives: 7\nbubble:\n  speed_x: 150\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRustle(path)
	if err != nil {
		t.Fatalf("LoadRustle: %v", err)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Bubble.SpeedX != 150 {
		t.Errorf("overrides not applied: lives=%d speed_x=%v", cfg.Gameplay.Lives, cfg.Bubble.SpeedX)
	}
	if cfg.Arena.Right != 550 {
		t.Errorf("missing keys should keep defaults, arena.right = %v", cfg.Arena.Right)
	}
}

func TestLoadRustleCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("gameplay: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", broken, "failed to parse"},
		{"invalid values", invalid, "gameplay.lives"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadRustle(tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadRustle(%s) error = %v, expected it to mention %q", tc.name, err, tc.want)
			}
		})
	}
}

func TestUserConfigIsPreferredOverEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".rustle", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rustle.yaml"), []byte("gameplay:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRustle("")
	if err != nil {
		t.Fatalf("LoadRustle: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("lives = %d, expected user config value 9", cfg.Gameplay.Lives)
	}
}

func TestApplyRustlePreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		faster bool
		slower bool
	}{
		{DifficultyEasy, 5, false, true},
		{DifficultyNormal, 3, false, false},
		{DifficultyHard, 2, true, false},
	}

	base := DefaultRustleConfig()
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRustleConfig()
			ApplyRustlePreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if got := cfg.Bubble.SpeedX > base.Bubble.SpeedX; got != tc.faster {
				t.Errorf("faster = %v, expected %v", got, tc.faster)
			}
			if got := cfg.Bubble.SpeedX < base.Bubble.SpeedX; got != tc.slower {
				t.Errorf("slower = %v, expected %v", got, tc.slower)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestDerivedPositions(t *testing.T) {
	cfg := DefaultRustleConfig()
	if got := cfg.PlayerY(); got != -371.25 {
		t.Errorf("PlayerY() = %v, expected -371.25", got)
	}
	if got := cfg.HookInitialScaleY() * cfg.Hook.Height; math.Abs(got-18.75) > 1e-9 {
		t.Errorf("initial hook height = %v, expected 18.75", got)
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultRustleConfig()
	cfg.Gameplay.Lives = 4
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadRustle(path)
	if err != nil {
		t.Fatalf("LoadRustle: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Error("dumped config should load back unchanged")
	}
}
