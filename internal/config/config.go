// Package config loads tada settings from defaults, TOML files, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"time"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	DefaultKey      = "todos"
	DefaultTheme    = "classic"
	DefaultAddDelay = 500 * time.Millisecond
	DefaultLogLevel = "info"
	DefaultDBName   = "tada.db"
)

// Config is the full set of tada settings.
type Config struct {
	Storage Storage `toml:"storage"`
	UI      UI      `toml:"ui"`
	Log     Log     `toml:"log"`

	// File is the config file that was loaded last, if any.
	File string `toml:"-"`
}

// Storage selects and locates the key/value backend.
type Storage struct {
	Backend string `toml:"backend"`
	// Dir holds one JSON file per key for the file backend.
	Dir string `toml:"dir"`
	// DBPath is the database file for the sqlite backend.
	DBPath string `toml:"db"`
	// Key is the storage key the item list lives under.
	Key string `toml:"key"`
}

type UI struct {
	Theme    string        `toml:"theme"`
	AddDelay time.Duration `toml:"add_delay"`
	NoColor  bool          `toml:"no_color"`
}

type Log struct {
	Level string `toml:"level"`
	// File receives diagnostics. Empty means stderr for commands and a
	// file under the user cache dir for the interactive view.
	File string `toml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	cfg.Storage = Storage{
		Backend: BackendFile,
		Dir:     "",
		DBPath:  "",
		Key:     DefaultKey,
	}
	cfg.UI = UI{
		Theme:    DefaultTheme,
		AddDelay: DefaultAddDelay,
	}
	cfg.Log = Log{
		Level: DefaultLogLevel,
	}
}
