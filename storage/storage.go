// Package storage persists the CSV text of a trading calendar between runs.
//
// A backend stores a single CSV text. It is the local save of the calendar:
// read once when the tool starts, written once before it exits.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Backend reads and writes the saved CSV text.
type Backend interface {
	// Load returns the saved text and true, or "" and false if nothing was ever saved.
	Load(ctx context.Context) (csv string, ok bool, err error)
	// Save replaces the saved text.
	Save(ctx context.Context, csv string) error
	// Close releases the backend resources.
	Close() error
}

const (
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// Kinds lists the available backends.
var Kinds = []string{KindFile, KindSQLite}

// Open returns the backend of the given kind, storing at 'path'.
func Open(kind, path string, log zerolog.Logger) (Backend, error) {
	log = log.With().Str("component", "storage").Str("backend", kind).Logger()
	switch kind {
	case KindFile, "":
		return NewFileBackend(path, log), nil
	case KindSQLite:
		return NewSQLiteBackend(path, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q, want one of %v", kind, Kinds)
	}
}
