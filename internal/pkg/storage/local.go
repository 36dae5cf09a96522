package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
)

// LocalStorage keeps one JSON file per collection under basePath.
type LocalStorage struct {
	basePath string
	mu       sync.Mutex
}

var _ snapshot.Store = (*LocalStorage)(nil)

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	// Create base directory if not exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{basePath: filepath.Clean(basePath)}, nil
}

func (s *LocalStorage) Get(ctx context.Context, name snapshot.Collection) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(name)
}

func (s *LocalStorage) Put(ctx context.Context, name snapshot.Collection, body json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(name, body)
}

func (s *LocalStorage) Update(ctx context.Context, name snapshot.Collection, fn func(json.RawMessage) (json.RawMessage, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read(name)
	if err != nil && !errors.Is(err, snapshot.ErrNotFound) {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	return s.write(name, next)
}

func (s *LocalStorage) path(name snapshot.Collection) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.Clean(string(name))+".json")

	// Ensure file is within basePath
	if !strings.HasPrefix(fullPath, s.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid collection name: %s", name)
	}
	return fullPath, nil
}

func (s *LocalStorage) read(name snapshot.Collection) (json.RawMessage, error) {
	fullPath, err := s.path(name)
	if err != nil {
		return nil, err
	}

	body, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, snapshot.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}

	return body, nil
}

func (s *LocalStorage) write(name snapshot.Collection, body json.RawMessage) error {
	fullPath, err := s.path(name)
	if err != nil {
		return err
	}

	// Write to a temp file first so readers never see a partial document
	tmp, err := os.CreateTemp(s.basePath, string(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return fmt.Errorf("failed to replace snapshot %s: %w", name, err)
	}

	return nil
}
