package storage

import (
	"path/filepath"
	"testing"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/storage/jsonfile"
	"github.com/idilsaglam/tada/internal/storage/memory"
	"github.com/idilsaglam/tada/internal/storage/sqlite"
)

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend string
		check   func(KV) bool
	}{
		{"", func(kv KV) bool { _, ok := kv.(*jsonfile.Store); return ok }},
		{config.BackendFile, func(kv KV) bool { _, ok := kv.(*jsonfile.Store); return ok }},
		{config.BackendSQLite, func(kv KV) bool { _, ok := kv.(*sqlite.Store); return ok }},
		{config.BackendMemory, func(kv KV) bool { _, ok := kv.(*memory.Store); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			kv, err := Open(config.Storage{
				Backend: tt.backend,
				Dir:     dir,
				DBPath:  filepath.Join(dir, "tada.db"),
			})
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer kv.Close()
			if !tt.check(kv) {
				t.Fatalf("backend %q opened %T", tt.backend, kv)
			}

			if err := kv.Set("todos", "[]"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			v, ok, err := kv.Get("todos")
			if err != nil || !ok || v != "[]" {
				t.Fatalf("Get = %q, %v, %v", v, ok, err)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := Open(config.Storage{Backend: "redis"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
