package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const fileRecordVersion = 1

// fileRecord is the on-disk envelope. The version field exists so a future
// layout change can migrate old files instead of rejecting them.
type fileRecord struct {
	Version int    `json:"version"`
	Token   string `json:"token"`
}

// File persists the token as a mode-0600 JSON file. Writes go through a
// temp file and rename so a crash never leaves a torn record.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at path. The parent directory is
// created on first Save.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("store: read %s: %w", f.path, err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// A corrupt record is indistinguishable from no record for the
		// caller: the session restarts unauthenticated either way.
		return "", ErrTokenNotFound
	}
	if rec.Token == "" {
		return "", ErrTokenNotFound
	}
	return rec.Token, nil
}

func (f *File) Save(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("store: create dir for %s: %w", f.path, err)
	}

	data, err := json.Marshal(fileRecord{Version: fileRecordVersion, Token: token})
	if err != nil {
		return fmt.Errorf("store: encode record: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store: rename %s: %w", tmp, err)
	}
	return nil
}

func (f *File) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: remove %s: %w", f.path, err)
	}
	return nil
}
