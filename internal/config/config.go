// Package config provides YAML-based settings and catalog loading.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/player"
)

// ErrInvalidSettings is wrapped by Validate failures.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the contents of skillquest.yaml.
type Settings struct {
	TickMS    int               `yaml:"tick_ms"`
	FPS       int               `yaml:"fps"`
	Seed      int64             `yaml:"seed"` // 0 picks a time-based seed
	Inventory InventorySettings `yaml:"inventory"`
	Vault     VaultSettings     `yaml:"vault"`
	Progress  ProgressSettings  `yaml:"progress"`
	Log       LogSettings       `yaml:"log"`
	Storage   StorageSettings   `yaml:"storage"`
}

// InventorySettings sizes the carried inventory.
type InventorySettings struct {
	Capacity int `yaml:"capacity"`
}

// VaultSettings sizes the vault.
type VaultSettings struct {
	Capacity   int `yaml:"capacity"`
	StackLimit int `yaml:"stack_limit"` // 0 means unlimited
}

// ProgressSettings controls progress bar resolution.
type ProgressSettings struct {
	Partitions int `yaml:"partitions"`
}

// LogSettings controls the log file.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// StorageSettings locates the records database.
type StorageSettings struct {
	Path string `yaml:"path"`
}

// TickInterval returns the game tick as a duration.
func (s Settings) TickInterval() time.Duration {
	return time.Duration(s.TickMS) * time.Millisecond
}

// Runtime converts the settings into the platform runtime config.
func (s Settings) Runtime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if s.FPS > 0 {
		cfg.FPS = s.FPS
	}
	if s.TickMS > 0 {
		cfg.TickInterval = s.TickInterval()
	}
	cfg.Seed = s.Seed
	return cfg
}

// PlayerOptions returns the container sizes for a new character.
func (s Settings) PlayerOptions() player.Options {
	return player.Options{
		InventoryCapacity: s.Inventory.Capacity,
		VaultCapacity:     s.Vault.Capacity,
		StackLimit:        s.Vault.StackLimit,
		Partitions:        s.Progress.Partitions,
	}
}

// Validate rejects values the game cannot run with.
func (s Settings) Validate() error {
	checks := []struct {
		name string
		val  int
		min  int
	}{
		{"tick_ms", s.TickMS, 1},
		{"fps", s.FPS, 1},
		{"inventory.capacity", s.Inventory.Capacity, 1},
		{"vault.capacity", s.Vault.Capacity, 1},
		{"vault.stack_limit", s.Vault.StackLimit, 0},
		{"progress.partitions", s.Progress.Partitions, 1},
	}
	for _, c := range checks {
		if c.val < c.min {
			return fmt.Errorf("config: %w: %s must be at least %d, got %d", ErrInvalidSettings, c.name, c.min, c.val)
		}
	}
	return nil
}

// fillDefaults replaces zero values with the built-in defaults, so a
// partial file only overrides what it names.
func (s *Settings) fillDefaults() {
	def := DefaultSettings()
	if s.TickMS == 0 {
		s.TickMS = def.TickMS
	}
	if s.FPS == 0 {
		s.FPS = def.FPS
	}
	if s.Inventory.Capacity == 0 {
		s.Inventory.Capacity = def.Inventory.Capacity
	}
	if s.Vault.Capacity == 0 {
		s.Vault.Capacity = def.Vault.Capacity
	}
	if s.Progress.Partitions == 0 {
		s.Progress.Partitions = def.Progress.Partitions
	}
	if s.Log.Level == "" {
		s.Log.Level = def.Log.Level
	}
	if s.Log.File == "" {
		s.Log.File = def.Log.File
	}
	if s.Storage.Path == "" {
		s.Storage.Path = def.Storage.Path
	}
}
