package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (<user config dir>/tada/config.toml)
// 3. Project config file (tada.toml or .tada.toml in workDir)
// 4. Environment variables
//
// When explicit is non-empty it replaces steps 2 and 3 and must exist.
// Flags are applied afterwards by the caller, then Finalize.
func Load(workDir, explicit string) (*Config, error) {
	cfg := Default()

	if explicit != "" {
		if err := loadConfigFile(cfg, explicit); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", explicit, err)
		}
	} else {
		if p := findUserConfigFile(); p != "" {
			if err := loadConfigFile(cfg, p); err != nil {
				return nil, fmt.Errorf("loading user config file %s: %w", p, err)
			}
		}
		if p := findProjectConfigFile(workDir); p != "" {
			if err := loadConfigFile(cfg, p); err != nil {
				return nil, fmt.Errorf("loading project config file %s: %w", p, err)
			}
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.File = path
	return nil
}

// Finalize expands paths, fills derived defaults and validates values.
func Finalize(cfg *Config, workDir string) error {
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(cfg.UI.Theme))

	switch cfg.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want file, sqlite or memory)", cfg.Storage.Backend)
	}
	switch cfg.UI.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q (want classic, neon or mono)", cfg.UI.Theme)
	}
	if cfg.UI.AddDelay < 0 {
		return fmt.Errorf("ui.add_delay: must not be negative, got %s", cfg.UI.AddDelay)
	}
	if strings.TrimSpace(cfg.Storage.Key) == "" {
		return errors.New("storage.key: must not be empty")
	}

	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		workDir = wd
	}

	cfg.Storage.Dir = absPath(expandPath(cfg.Storage.Dir), workDir)
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = workDir
	}
	cfg.Storage.DBPath = absPath(expandPath(cfg.Storage.DBPath), workDir)
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = filepath.Join(cfg.Storage.Dir, DefaultDBName)
	}
	cfg.Log.File = absPath(expandPath(cfg.Log.File), workDir)
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}
