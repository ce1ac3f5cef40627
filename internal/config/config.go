// Package config loads the engine tunables from a TOML file, falling
// back to built-in defaults when no file exists.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/rezaimia/buddypocket/internal/pet"
)

type Config struct {
	// Per-minute hunger loss; the other needs drain at fractions of it.
	HungerDecayPerMinute float64 `toml:"hungerDecayPerMinute"`
	HappinessDecayFactor float64 `toml:"happinessDecayFactor"`
	EnergyDecayFactor    float64 `toml:"energyDecayFactor"`
	HygieneDecayFactor   float64 `toml:"hygieneDecayFactor"`

	CareXP    int `toml:"careXP"`
	CareCoins int `toml:"careCoins"`

	GameCoins   int `toml:"gameCoins"`
	GameXP      int `toml:"gameXP"`
	GamePassXP  int `toml:"gamePassXP"`
	GameGemsMin int `toml:"gameGemsMin"`
	GameGemsMax int `toml:"gameGemsMax"`

	BattleWinGems   int `toml:"battleWinGems"`
	BattleWinXP     int `toml:"battleWinXP"`
	BattleWinCoins  int `toml:"battleWinCoins"`
	BattleWinPassXP int `toml:"battleWinPassXP"`
	BattleLossXP    int `toml:"battleLossXP"`
	BattleLossCoins int `toml:"battleLossCoins"`

	DevCode string `toml:"devCode"`
}

func Default() Config {
	return Config{
		HungerDecayPerMinute: 0.002,
		HappinessDecayFactor: 0.8,
		EnergyDecayFactor:    0.6,
		HygieneDecayFactor:   0.5,

		CareXP:    5,
		CareCoins: 2,

		GameCoins:   15,
		GameXP:      20,
		GamePassXP:  20,
		GameGemsMin: 5,
		GameGemsMax: 10,

		BattleWinGems:   3,
		BattleWinXP:     30,
		BattleWinCoins:  20,
		BattleWinPassXP: 30,
		BattleLossXP:    10,
		BattleLossCoins: 5,

		DevCode: "ZETA_DEV_2026",
	}
}

// DecayRates converts the configured hunger rate and factors into the
// per-need rates the pet package consumes.
func (c Config) DecayRates() pet.DecayRates {
	return pet.DecayRates{
		Hunger:    c.HungerDecayPerMinute,
		Happiness: c.HungerDecayPerMinute * c.HappinessDecayFactor,
		Energy:    c.HungerDecayPerMinute * c.EnergyDecayFactor,
		Hygiene:   c.HungerDecayPerMinute * c.HygieneDecayFactor,
	}
}

// Load reads the config file at path. A missing file yields the
// defaults; a present but unreadable file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
