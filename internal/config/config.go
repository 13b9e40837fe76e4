// Package config holds the AI tuning knobs and loads them from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Difficulty scales how shrewdly AI fleets play.
type Difficulty uint8

const (
	Weak Difficulty = iota
	Normal
	Challenging
)

// ErrUnknownDifficulty is returned for a difficulty name that is not
// weak, normal or challenging.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

func (d Difficulty) String() string {
	switch d {
	case Weak:
		return "weak"
	case Normal:
		return "normal"
	case Challenging:
		return "challenging"
	}
	return "unknown"
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "weak":
		return Weak, nil
	case "normal":
		return Normal, nil
	case "challenging":
		return Challenging, nil
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

const (
	defaultExploringAmount   = 50
	defaultDefenseUpdateTurn = 15
	defaultDelegacyTurns     = 5
	defaultSpyConversionDraw = 40
	defaultChartedThreshold  = 25
	defaultPrivateerRadius   = 6
	defaultScrapGraceTurns   = 5
	defaultRoamDrift         = 5
)

// Config stores AI tuning loaded from a TOML file.
type Config struct {
	Difficulty Difficulty
	// ExploringAmount caps privateer wandering at twice this many turns.
	ExploringAmount int
	// DefenseUpdateTurn is how often defenders are rotated.
	DefenseUpdateTurn int
	DelegacyTurns     int
	// SpyConversionDraw bounds the draw a spy mission's age is checked against.
	SpyConversionDraw int
	// ExploreTurnCap is the per-difficulty turn budget for exploring one sun.
	ExploreTurnCap   [3]int
	ChartedThreshold int
	PrivateerRadius  int
	ScrapGraceTurns  int
	RoamDrift        int
}

type fileConfig struct {
	Difficulty                *string `toml:"difficulty"`
	ExploringAmount           *int    `toml:"exploring_amount"`
	DefenseUpdateTurn         *int    `toml:"defense_update_turn"`
	DelegacyTurns             *int    `toml:"delegacy_turns"`
	SpyConversionDraw         *int    `toml:"spy_conversion_draw"`
	ExploreTurnCapWeak        *int    `toml:"explore_turn_cap_weak"`
	ExploreTurnCapNormal      *int    `toml:"explore_turn_cap_normal"`
	ExploreTurnCapChallenging *int    `toml:"explore_turn_cap_challenging"`
	ChartedThreshold          *int    `toml:"charted_threshold"`
	PrivateerRadius           *int    `toml:"privateer_radius"`
	ScrapGraceTurns           *int    `toml:"scrap_grace_turns"`
	RoamDrift                 *int    `toml:"roam_drift"`
}

// Default returns the built-in tuning.
func Default() Config {
	return Config{
		Difficulty:        Normal,
		ExploringAmount:   defaultExploringAmount,
		DefenseUpdateTurn: defaultDefenseUpdateTurn,
		DelegacyTurns:     defaultDelegacyTurns,
		SpyConversionDraw: defaultSpyConversionDraw,
		ExploreTurnCap:    [3]int{30, 20, 12},
		ChartedThreshold:  defaultChartedThreshold,
		PrivateerRadius:   defaultPrivateerRadius,
		ScrapGraceTurns:   defaultScrapGraceTurns,
		RoamDrift:         defaultRoamDrift,
	}
}

// ExploreCap returns the explore turn budget for the configured difficulty.
func (c Config) ExploreCap() int {
	return c.ExploreTurnCap[c.Difficulty]
}

// Load overlays the TOML file at path on the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config file %q: %w", path, err)
	}

	var decoded fileConfig
	if _, err := toml.DecodeFile(path, &decoded); err != nil {
		return cfg, fmt.Errorf("decode config file %q: %w", path, err)
	}
	if err := apply(&cfg, decoded); err != nil {
		return cfg, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays TOML text on the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	var decoded fileConfig
	if _, err := toml.Decode(data, &decoded); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := apply(&cfg, decoded); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func apply(cfg *Config, f fileConfig) error {
	if f.Difficulty != nil {
		d, err := ParseDifficulty(*f.Difficulty)
		if err != nil {
			return err
		}
		cfg.Difficulty = d
	}
	ints := []struct {
		key string
		src *int
		dst *int
	}{
		{"exploring_amount", f.ExploringAmount, &cfg.ExploringAmount},
		{"defense_update_turn", f.DefenseUpdateTurn, &cfg.DefenseUpdateTurn},
		{"delegacy_turns", f.DelegacyTurns, &cfg.DelegacyTurns},
		{"spy_conversion_draw", f.SpyConversionDraw, &cfg.SpyConversionDraw},
		{"explore_turn_cap_weak", f.ExploreTurnCapWeak, &cfg.ExploreTurnCap[Weak]},
		{"explore_turn_cap_normal", f.ExploreTurnCapNormal, &cfg.ExploreTurnCap[Normal]},
		{"explore_turn_cap_challenging", f.ExploreTurnCapChallenging, &cfg.ExploreTurnCap[Challenging]},
		{"charted_threshold", f.ChartedThreshold, &cfg.ChartedThreshold},
		{"privateer_radius", f.PrivateerRadius, &cfg.PrivateerRadius},
		{"scrap_grace_turns", f.ScrapGraceTurns, &cfg.ScrapGraceTurns},
		{"roam_drift", f.RoamDrift, &cfg.RoamDrift},
	}
	for _, field := range ints {
		if field.src == nil {
			continue
		}
		if *field.src <= 0 {
			return fmt.Errorf("%s must be positive, got %d", field.key, *field.src)
		}
		*field.dst = *field.src
	}
	return nil
}
