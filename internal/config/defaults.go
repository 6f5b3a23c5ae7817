package config

import (
	_ "embed"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/inventory"
	"github.com/vovakirdan/skillquest/internal/skills"
)

//go:embed defaults/skillquest.yaml
var defaultSettingsYAML []byte

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// File names looked up in each config directory.
const (
	SettingsFile = "skillquest.yaml"
	CatalogFile  = "catalog.yaml"
)

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		TickMS: int(core.DefaultTickInterval.Milliseconds()),
		FPS:    core.DefaultFPS,
		Inventory: InventorySettings{
			Capacity: inventory.DefaultCapacity,
		},
		Vault: VaultSettings{
			Capacity:   inventory.DefaultVaultCapacity,
			StackLimit: inventory.DefaultStackLimit,
		},
		Progress: ProgressSettings{
			Partitions: skills.DefaultPartitions,
		},
		Log: LogSettings{
			Level: "info",
			File:  "~/.skillquest/skillquest.log",
		},
		Storage: StorageSettings{
			Path: "~/.skillquest/records.db",
		},
	}
}

// DefaultYAML returns the embedded default file for name, or nil.
func DefaultYAML(name string) []byte {
	switch name {
	case SettingsFile:
		return defaultSettingsYAML
	case CatalogFile:
		return defaultCatalogYAML
	default:
		return nil
	}
}
