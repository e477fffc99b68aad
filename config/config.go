package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Map        MapConfig        `toml:"map"`
	Generation GenerationConfig `toml:"generation"`
	Player     PlayerConfig     `toml:"player"`
	Spawn      SpawnConfig      `toml:"spawn"`
	Logging    LoggingConfig    `toml:"logging"`
	Window     WindowConfig     `toml:"window"`
}

type MapConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type GenerationConfig struct {
	Kind        string `toml:"kind"` // "random", "rooms", "bsp" or "cellular"
	Seed        int64  `toml:"seed"` // 0 = seed from the clock
	MaxAttempts int    `toml:"max_attempts"`
}

type PlayerConfig struct {
	ViewRange int `toml:"view_range"`
	HP        int `toml:"hp"`
	Defense   int `toml:"defense"`
	Power     int `toml:"power"`
}

type SpawnConfig struct {
	MaxMonstersPerRegion int    `toml:"max_monsters_per_region"`
	PerRoomCenter        bool   `toml:"per_room_center"` // one monster per room centre instead of random region fill
	MonsterViewRange     int    `toml:"monster_view_range"`
	Templates            string `toml:"templates"` // YAML file; empty = built-in table
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
// The second result reports whether the file was found.
func LoadOrDefault(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Map.Width < 10 || c.Map.Height < 10 {
		return fmt.Errorf("map must be at least 10x10, got %dx%d", c.Map.Width, c.Map.Height)
	}
	if c.Player.HP <= 0 {
		return fmt.Errorf("player hp must be positive, got %d", c.Player.HP)
	}
	if c.Player.ViewRange <= 0 || c.Spawn.MonsterViewRange <= 0 {
		return fmt.Errorf("view ranges must be positive")
	}
	if c.Spawn.MaxMonstersPerRegion < 0 {
		return fmt.Errorf("max_monsters_per_region must not be negative")
	}
	switch c.Generation.Kind {
	case "", "random", "rooms", "bsp", "cellular":
	default:
		return fmt.Errorf("unknown generation kind %q", c.Generation.Kind)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Map: MapConfig{
			Width:  80,
			Height: 50,
		},
		Generation: GenerationConfig{
			Kind:        "random",
			MaxAttempts: 5,
		},
		Player: PlayerConfig{
			ViewRange: 8,
			HP:        30,
			Defense:   2,
			Power:     5,
		},
		Spawn: SpawnConfig{
			MaxMonstersPerRegion: 4,
			PerRoomCenter:        true,
			MonsterViewRange:     8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Title: "Dungeon Crawl",
		},
	}
}
