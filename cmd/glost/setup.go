package main

import (
	"os"
	"path/filepath"

	"github.com/revelaction/glost/storage"
	"github.com/revelaction/glost/storage/filesystem"
	"github.com/revelaction/glost/storage/sqlite/zombiezen"
)

// NewDictRepository selects the dictionary backend by path: a directory
// holds JSON files, everything else is a SQLite database. A missing
// path is created, as a database when it carries a .db extension.
func NewDictRepository(p *Pool, path string) (storage.DictRepository, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filesystem.NewDictStore(path), nil
	}

	if err != nil && filepath.Ext(path) != ".db" {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, err
		}
		return filesystem.NewDictStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateSchemas(pool, "dicts.sql"); err != nil {
		return nil, err
	}
	return zombiezen.NewDictStore(pool), nil
}
