package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from ~/.taskdeck/config.yaml, falling back
// to defaults when the file is missing or the home dir is unknown.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := loadFile(Path(), cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Log.Path = expandHome(cfg.Log.Path)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// Path returns the path to the config file
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Dir returns the path to the taskdeck directory
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".taskdeck")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
