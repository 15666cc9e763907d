// ABOUTME: Persistent key-value store for session credentials
// ABOUTME: File-per-key storage in the XDG config directory

package session

import (
	"os"
	"path/filepath"
)

// Storage keys for the persisted session record.
const (
	TokenKey = "auth_token"
	UserKey  = "user_data"
)

// Store is an opaque persistent key-value facility surviving restarts.
type Store interface {
	// Get returns the value for key, or ok=false if the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// FileStore persists each key as a file in a config directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at the given directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "storefront")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "storefront")
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get reads the value for key from disk.
func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Set writes the value for key, creating the directory if needed.
// Files are 0600 since they hold credentials.
func (s *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), []byte(value), 0600)
}

// Delete removes the file for key if present.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
