// Package storage defines the key/value port the todo store persists
// through, and opens the backend selected in configuration.
package storage

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/storage/jsonfile"
	"github.com/idilsaglam/tada/internal/storage/memory"
	"github.com/idilsaglam/tada/internal/storage/sqlite"
)

// KV is a synchronous string key/value store. Get reports ok=false for a
// key that was never written.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

var (
	_ KV = (*jsonfile.Store)(nil)
	_ KV = (*sqlite.Store)(nil)
	_ KV = (*memory.Store)(nil)
)

// Open returns the backend named by cfg.Backend.
func Open(cfg config.Storage) (KV, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return jsonfile.New(cfg.Dir)
	case config.BackendSQLite:
		return sqlite.Open(cfg.DBPath)
	case config.BackendMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
