package keystore

import (
	"fmt"
	"os"
)

// FileHandle is a Handle backed by a single file on an ordinary
// filesystem — the desktop/server stand-in for the device's flash
// mount (spec.md §1 treats the mount itself as an external
// collaborator; this is the trusted-primitive-shaped provider behind
// the Handle contract).
type FileHandle struct {
	path string
}

// NewFileHandle returns a Handle backed by path.
func NewFileHandle(path string) *FileHandle {
	return &FileHandle{path: path}
}

func (h *FileHandle) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return nil, fmt.Errorf("keystore: read %s: %w", h.path, err)
	}
	return data, nil
}

func (h *FileHandle) WriteAll(data []byte) error {
	if err := os.WriteFile(h.path, data, 0o600); err != nil {
		return fmt.Errorf("keystore: write %s: %w", h.path, err)
	}
	return nil
}

func (h *FileHandle) Remove() error {
	if err := os.Remove(h.path); err != nil {
		return fmt.Errorf("keystore: remove %s: %w", h.path, err)
	}
	return nil
}

func (h *FileHandle) Exists() bool {
	_, err := os.Stat(h.path)
	return err == nil
}
