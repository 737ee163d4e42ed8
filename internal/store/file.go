package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileBackend stores each key as "<dir>/<key>.json".
type FileBackend struct {
	dir string
	mu  sync.RWMutex
}

// NewFileBackend creates a FileBackend rooted at dir, creating it if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Dir returns the directory holding the stored values.
func (f *FileBackend) Dir() string {
	return f.dir
}

// Get implements Backend.
func (f *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	path, err := f.keyToPath(key)
	if err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// Set implements Backend using an atomic write.
func (f *FileBackend) Set(_ context.Context, key string, value []byte) error {
	path, err := f.keyToPath(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return atomicWriteFile(path, value, 0o600)
}

// Delete implements Backend.
func (f *FileBackend) Delete(_ context.Context, key string) error {
	path, err := f.keyToPath(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// keyToPath maps a key to its file. Keys are flat names.
func (f *FileBackend) keyToPath(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it into place, so readers never observe a partial write.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
