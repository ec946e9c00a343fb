// Package file provides a filesystem-backed payload source with caching.
package file

import (
	"context"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FileSource loads payloads from the local filesystem. Reads are cached, and
// concurrent fetches of the same path are collapsed into one read.
type FileSource struct {
	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewFileSource creates a filesystem payload source.
func NewFileSource() *FileSource {
	return &FileSource{
		cache: make(map[string][]byte),
	}
}

// Fetch reads the file content. Results are cached per path.
func (s *FileSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	s.cacheMu.RLock()
	if cached, ok := s.cache[path]; ok {
		s.cacheMu.RUnlock()
		return cached, nil
	}
	s.cacheMu.RUnlock()

	result, err, _ := s.group.Do(path, func() (any, error) {
		s.cacheMu.RLock()
		if cached, ok := s.cache[path]; ok {
			s.cacheMu.RUnlock()
			return cached, nil
		}
		s.cacheMu.RUnlock()

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		s.cacheMu.Lock()
		s.cache[path] = data
		s.cacheMu.Unlock()

		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
