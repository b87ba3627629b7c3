package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

var ErrNotFound = errors.New("key not found")

// Storage is the client's persistent key/value store. SetMany and Delete
// apply all keys or none.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStorage) SetMany(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		s.values[k] = v
	}
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}

// FileStorage keeps every key in one JSON document. Writes go to a temp file
// that is renamed over the original.
type FileStorage struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		// unreadable file: start empty, the next write replaces it
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *FileStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *FileStorage) SetMany(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyLocked()
	for k, v := range values {
		next[k] = v
	}
	return s.commitLocked(next)
}

func (s *FileStorage) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyLocked()
	for _, k := range keys {
		delete(next, k)
	}
	return s.commitLocked(next)
}

func (s *FileStorage) Close() error {
	return nil
}

func (s *FileStorage) copyLocked() map[string]string {
	next := make(map[string]string, len(s.values))
	for k, v := range s.values {
		next[k] = v
	}
	return next
}

func (s *FileStorage) commitLocked(next map[string]string) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to marshal session file: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	s.values = next
	return nil
}
