package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Storage is the key-value persistence port for the quick-access layer.
// Values are opaque byte blobs; callers own the serialization format.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// FileStorage implements Storage with one JSON file per key inside a directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a FileStorage rooted at the given directory.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Dir returns the storage directory.
func (s *FileStorage) Dir() string {
	return s.dir
}

// Get reads the value stored for key.
// Returns ErrNotFound if the key's file doesn't exist.
func (s *FileStorage) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set writes the value for key.
// Creates the directory if it doesn't exist.
func (s *FileStorage) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.keyPath(key), value, 0644)
}

func (s *FileStorage) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// DefaultDataDir returns the default data directory: ~/.config/minim
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "minim"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to
// per-key JSON files.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	// If SQLite database exists, use it
	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	// Fall back to JSON files
	dir, err := DefaultDataDir()
	if err != nil {
		return nil, err
	}
	return NewFileStorage(dir), nil
}
