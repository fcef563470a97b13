package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot keeps each named slot as one JSON file inside a directory.
// This is the local single-client store: no locking, last writer wins.
type FileSlot struct {
	path string
}

// NewFileSlot returns a slot stored at dir/<name>.json, creating the
// directory if needed.
func NewFileSlot(dir, name string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileSlot{path: filepath.Join(dir, name+".json")}, nil
}

// Read returns the slot content, or nil if the file does not exist yet.
func (s *FileSlot) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read slot %s: %w", s.path, err)
	}
	return data, nil
}

// Write replaces the slot content atomically (write-then-rename) so a
// crash mid-write never leaves a half-written list behind.
func (s *FileSlot) Write(_ context.Context, payload []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace slot %s: %w", s.path, err)
	}
	return nil
}
