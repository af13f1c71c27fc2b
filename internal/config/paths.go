package config

import (
	"os"
	"path/filepath"
	"strings"
)

// findUserConfigFile returns <user config dir>/tada/config.toml if it exists.
func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "tada", "config.toml")
	if fileExists(p) {
		return p
	}
	return ""
}

// findProjectConfigFile looks for tada.toml, then .tada.toml, in workDir.
func findProjectConfigFile(workDir string) string {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		workDir = wd
	}
	for _, name := range []string{"tada.toml", ".tada.toml"} {
		p := filepath.Join(workDir, name)
		if fileExists(p) {
			return p
		}
	}
	return ""
}

// DefaultLogFile is where the interactive view writes diagnostics when no
// log file is configured.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "tada", "tada.log")
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}

func absPath(p, base string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
