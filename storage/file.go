package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileBackend saves the CSV text in a plain file.
type FileBackend struct {
	path string
	log  zerolog.Logger
}

// NewFileBackend returns a backend saving into the file at 'path'.
func NewFileBackend(path string, log zerolog.Logger) *FileBackend {
	return &FileBackend{path: path, log: log}
}

// Path returns the file path.
func (b *FileBackend) Path() string { return b.path }

// Load implements Backend.
func (b *FileBackend) Load(_ context.Context) (string, bool, error) {
	content, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		b.log.Debug().Str("path", b.path).Msg("no saved calendar")
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %q: %w", b.path, err)
	}
	b.log.Debug().Str("path", b.path).Int("bytes", len(content)).Msg("calendar loaded")
	return string(content), true, nil
}

// Save implements Backend.
//
// The text is first written to a temporary file that is renamed over the previous save,
// so that an interrupted save never leaves a truncated file.
func (b *FileBackend) Save(_ context.Context, csv string) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(csv); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("saving %q: %w", b.path, err)
	}
	b.log.Debug().Str("path", b.path).Int("bytes", len(csv)).Msg("calendar saved")
	return nil
}

// Close implements Backend.
func (b *FileBackend) Close() error { return nil }
