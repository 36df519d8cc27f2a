package settings

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

// FileStore keeps each profile in <dir>/<profile>.json.
type FileStore struct {
	mu      sync.Mutex
	dir     string
	profile string
}

// NewFileStore creates dir if needed and returns a store for profile.
func NewFileStore(dir, profile string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}
	return &FileStore{dir: dir, profile: profile}, nil
}

// Path returns the profile's file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.profile+".json")
}

func (s *FileStore) Load(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) read() (Settings, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	var st Settings
	if err := json.Unmarshal(data, &st); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return st, nil
}

func (s *FileStore) Save(ctx context.Context, patch Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(current.Merge(patch), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, s.profile+".*.tmp")
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s *FileStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove settings: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
