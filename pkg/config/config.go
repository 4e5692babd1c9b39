// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/opd-ai/go-hitscan/pkg/entity"
	"github.com/opd-ai/go-hitscan/pkg/spawn"
)

// GameConfig contains configuration for a hitscan session
type GameConfig struct {
	Arena  ArenaConfig  `json:"arena"`
	Player PlayerConfig `json:"player"`
	Enemy  EnemyConfig  `json:"enemy"`
	Weapon WeaponConfig `json:"weapon"`
	Spawn  SpawnConfig  `json:"spawn"`
	Loop   LoopConfig   `json:"loop"`
}

// ArenaConfig sets the playfield size in world units
type ArenaConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PlayerConfig contains player tuning
type PlayerConfig struct {
	Radius float64 `json:"radius"`
	Speed  float64 `json:"speed"`
}

// EnemyConfig contains enemy tuning
type EnemyConfig struct {
	Radius float64 `json:"radius"`
	Speed  float64 `json:"speed"`
	Health float64 `json:"health"`
}

// WeaponConfig contains hitscan weapon tuning
type WeaponConfig struct {
	ReloadInterval float64 `json:"reloadInterval"` // seconds
	Range          float64 `json:"range"`
}

// SpawnConfig contains the population policy
type SpawnConfig struct {
	Target         int `json:"target"`
	ChancePercent  int `json:"chancePercent"`
	InitialEnemies int `json:"initialEnemies"`
}

// LoopConfig contains frame loop settings
type LoopConfig struct {
	// MaxDeltaTime caps a single frame's dt in seconds. Zero disables the cap.
	MaxDeltaTime float64 `json:"maxDeltaTime"`
	// Seed for the spawn RNG. Zero means seed from the clock.
	Seed uint64 `json:"seed"`
}

// Validation errors
var (
	ErrInvalidArena  = errors.New("arena dimensions must be positive")
	ErrInvalidPlayer = errors.New("player radius and speed must be positive")
	ErrInvalidEnemy  = errors.New("enemy radius, speed and health must be positive")
	ErrInvalidWeapon = errors.New("weapon reload interval and range must be positive")
	ErrInvalidSpawn  = errors.New("spawn target and initial enemies must be non-negative and chance within [0, 100]")
	ErrInvalidLoop   = errors.New("max delta time must be non-negative")
	ErrNonFinite     = errors.New("value must be finite")
)

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Radius: entity.PlayerRadius,
			Speed:  entity.PlayerSpeed,
		},
		Enemy: EnemyConfig{
			Radius: entity.EnemyRadius,
			Speed:  entity.EnemySpeed,
			Health: entity.EnemyHealth,
		},
		Weapon: WeaponConfig{
			ReloadInterval: entity.ReloadInterval,
			Range:          entity.WeaponRange,
		},
		Spawn: SpawnConfig{
			Target:         spawn.DefaultTarget,
			ChancePercent:  spawn.DefaultChancePercent,
			InitialEnemies: spawn.DefaultTarget,
		},
	}
}

// Validate checks that every tunable is in range. Float fields must also be
// finite.
func (c *GameConfig) Validate() error {
	switch {
	case !positive(c.Arena.Width) || !positive(c.Arena.Height):
		return fmt.Errorf("%w: got %vx%v", ErrInvalidArena, c.Arena.Width, c.Arena.Height)
	case !positive(c.Player.Radius) || !positive(c.Player.Speed):
		return ErrInvalidPlayer
	case !positive(c.Enemy.Radius) || !positive(c.Enemy.Speed) || !positive(c.Enemy.Health):
		return ErrInvalidEnemy
	case !positive(c.Weapon.ReloadInterval) || !positive(c.Weapon.Range):
		return ErrInvalidWeapon
	case c.Spawn.Target < 0 || c.Spawn.InitialEnemies < 0 ||
		c.Spawn.ChancePercent < 0 || c.Spawn.ChancePercent > 100:
		return ErrInvalidSpawn
	case !isFinite(c.Loop.MaxDeltaTime) || c.Loop.MaxDeltaTime < 0:
		return ErrInvalidLoop
	}
	return nil
}

func positive(v float64) bool {
	return isFinite(v) && v > 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
