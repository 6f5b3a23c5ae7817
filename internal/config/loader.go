package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skillquest/internal/catalog"
)

// SourceEmbedded is reported when the built-in default was used.
const SourceEmbedded = "embedded"

// LoadSettings loads skillquest.yaml.
// Search order: customPath -> ~/.skillquest/configs -> ./configs -> embedded default.
// Returns the settings and the path they came from.
func LoadSettings(customPath string) (Settings, string, error) {
	var cfg Settings
	src, err := load(customPath, SettingsFile, func(data []byte) error {
		cfg = Settings{}
		return yaml.Unmarshal(data, &cfg)
	})
	if err != nil {
		return Settings{}, src, err
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return Settings{}, src, err
	}
	return cfg, src, nil
}

// LoadCatalog loads catalog.yaml with the same search order as LoadSettings.
func LoadCatalog(customPath string) (*catalog.Catalog, string, error) {
	var cat *catalog.Catalog
	src, err := load(customPath, CatalogFile, func(data []byte) error {
		c, err := catalog.Parse(data)
		if err != nil {
			return err
		}
		cat = c
		return nil
	})
	if err != nil {
		if src == SourceEmbedded {
			return catalog.Default(), src, nil // Fallback to hardcoded if embed fails
		}
		return nil, src, err
	}
	return cat, src, nil
}

// load finds the first existing candidate for name and hands its bytes to
// parse. A file that exists but fails to parse is an error; only missing
// files fall through to the next location.
func load(customPath, name string, parse func([]byte) error) (string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return customPath, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := parse(data); err != nil {
			return customPath, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{
		userConfigPath(name),
		filepath.Join("configs", name),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return path, fmt.Errorf("config: cannot read %s: %w", path, err)
		}
		if err := parse(data); err != nil {
			return path, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
		return path, nil
	}

	// Use embedded default YAML
	if err := parse(DefaultYAML(name)); err != nil {
		return SourceEmbedded, fmt.Errorf("config: embedded %s is invalid: %w", name, err)
	}
	return SourceEmbedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skillquest", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
