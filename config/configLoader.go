package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aiono/blogbuild/parser/metadecoders"
	"github.com/spf13/afero"
)

// ValidConfigFileNames are the config files looked for in the site root, in
// order of priority.
var ValidConfigFileNames = []string{"config.toml", "config.yaml", "config.yml", "config.json"}

// FromFileToMap is the same as FromFile, but it returns the config values
// as a simple map.
func FromFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	m, err := metadecoders.Default.UnmarshalFileToMap(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", filename, err)
	}
	return m, nil
}

// FromFile loads the configuration from the given filename.
func FromFile(fs afero.Fs, filename string) (Provider, error) {
	m, err := FromFileToMap(fs, filename)
	if err != nil {
		return nil, err
	}
	return NewFrom(m), nil
}

// LoadConfig loads the configuration for the site rooted at workingDir.
// If filename is empty the first of ValidConfigFileNames found is used, and
// a site without any config file gets the defaults only.
// The defaults from DefaultSettings are always applied.
func LoadConfig(fs afero.Fs, workingDir, filename string) (Provider, string, error) {
	cfg := New()

	if filename == "" {
		for _, name := range ValidConfigFileNames {
			candidate := filepath.Join(workingDir, name)
			if ok, _ := afero.Exists(fs, candidate); ok {
				filename = candidate
				break
			}
		}
	} else if !filepath.IsAbs(filename) {
		filename = filepath.Join(workingDir, filename)
	}

	if filename != "" {
		m, err := FromFileToMap(fs, filename)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, filename, fmt.Errorf("config file %q not found: %w", filename, err)
			}
			return nil, filename, err
		}
		cfg.Set("", m)
	}

	cfg.SetDefaults(DefaultSettings())
	cfg.Set("workingDir", workingDir)

	return cfg, filename, nil
}
