// Package migrations embeds the goose schema migrations for every
// supported store backend.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// SQLite returns the migrations for the embedded SQLite store.
func SQLite() fs.FS { return sub("sqlite") }

// Postgres returns the migrations for the PostgreSQL store.
func Postgres() fs.FS { return sub("postgres") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// dir is one of the embedded directories
		panic(err)
	}
	return f
}
