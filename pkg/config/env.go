// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override file configuration.
const (
	EnvArenaWidth   = "HITSCAN_ARENA_WIDTH"
	EnvArenaHeight  = "HITSCAN_ARENA_HEIGHT"
	EnvSpawnTarget  = "HITSCAN_SPAWN_TARGET"
	EnvSpawnChance  = "HITSCAN_SPAWN_CHANCE"
	EnvSeed         = "HITSCAN_SEED"
	EnvMaxDeltaTime = "HITSCAN_MAX_DELTA"
)

// ApplyEnvironmentOverrides applies HITSCAN_* variables on top of config and
// re-validates the result. Unset variables leave the field alone.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	if err := overrideFloat(EnvArenaWidth, &config.Arena.Width); err != nil {
		return err
	}
	if err := overrideFloat(EnvArenaHeight, &config.Arena.Height); err != nil {
		return err
	}
	if err := overrideInt(EnvSpawnTarget, &config.Spawn.Target); err != nil {
		return err
	}
	if err := overrideInt(EnvSpawnChance, &config.Spawn.ChancePercent); err != nil {
		return err
	}
	if err := overrideUint(EnvSeed, &config.Loop.Seed); err != nil {
		return err
	}
	if err := overrideFloat(EnvMaxDeltaTime, &config.Loop.MaxDeltaTime); err != nil {
		return err
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid environment configuration: %w", err)
	}
	return nil
}

func overrideFloat(key string, dst *float64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if !isFinite(v) {
		return fmt.Errorf("invalid %s: %w: %q", key, ErrNonFinite, raw)
	}
	*dst = v
	return nil
}

func overrideInt(key string, dst *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func overrideUint(key string, dst *uint64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}
