package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() on missing file = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buddy.toml")
	body := "hungerDecayPerMinute = 0.004\ncareXP = 9\ndevCode = \"OTHER\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HungerDecayPerMinute != 0.004 || cfg.CareXP != 9 || cfg.DevCode != "OTHER" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.GameCoins != Default().GameCoins {
		t.Errorf("GameCoins = %d, want default %d", cfg.GameCoins, Default().GameCoins)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("careXP = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed TOML")
	}
}

func TestDecayRates(t *testing.T) {
	r := Default().DecayRates()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"hunger", r.Hunger, 0.002},
		{"happiness", r.Happiness, 0.0016},
		{"energy", r.Energy, 0.0012},
		{"hygiene", r.Hygiene, 0.001},
	}
	for _, tc := range tests {
		if math.Abs(tc.got-tc.want) > 1e-12 {
			t.Errorf("%s rate = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}
