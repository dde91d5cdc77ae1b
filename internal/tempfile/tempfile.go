// Package tempfile owns the single temporary message file a run may need.
package tempfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// ErrCreate is returned when the temporary file cannot be created or filled.
var ErrCreate = errors.New("could not create temporary resource")

// DefaultPattern names message files created by vmc.
const DefaultPattern = "vmc-message-*.txt"

// Scope creates its file lazily on the first Write and removes it exactly
// once on Release. The zero value uses the system temp dir.
type Scope struct {
	Dir     string
	Pattern string

	mu       sync.Mutex
	path     string
	released bool
	once     sync.Once
	err      error
}

// NewScope returns a scope that creates files in dir (os.TempDir when empty).
func NewScope(dir string) *Scope {
	return &Scope{Dir: dir, Pattern: DefaultPattern}
}

// Write creates the file holding data and returns its path. Only the first
// call creates a file; later calls overwrite it.
func (s *Scope) Write(data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return "", fmt.Errorf("%w: scope already released", ErrCreate)
	}

	if s.path == "" {
		pattern := s.Pattern
		if pattern == "" {
			pattern = DefaultPattern
		}
		f, err := os.CreateTemp(s.Dir, pattern)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrCreate, err)
		}
		s.path = f.Name()
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrCreate, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreate, err)
	}
	return s.path, nil
}

// Path returns the file path, or "" if nothing was written yet.
func (s *Scope) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Release removes the file. It is safe to call more than once and on a
// scope that never created a file.
func (s *Scope) Release() error {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.released = true
		if s.path == "" {
			return
		}
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.err = fmt.Errorf("failed to remove temporary file %s: %w", s.path, err)
		}
	})
	return s.err
}
