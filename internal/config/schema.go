package config

// Config represents the full taskdeck configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Storage configuration
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// UI configuration
	UI UIConfig `yaml:"ui" mapstructure:"ui"`

	// Log configuration
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// StorageConfig configures the SQLite backing store
type StorageConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// UIConfig configures the task list view
type UIConfig struct {
	// Filter shown on launch: all, active, completed or deleted
	DefaultFilter string `yaml:"default_filter" mapstructure:"default_filter"`
}

// LogConfig configures file logging
type LogConfig struct {
	Path  string `yaml:"path" mapstructure:"path"`
	Level string `yaml:"level" mapstructure:"level"`
}
