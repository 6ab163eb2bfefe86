// Package leak checks candidate passwords against known breach corpora.
package leak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var ErrCorpusUnavailable = errors.New("leak corpus unavailable")

// Source reports whether a password appears in one breach corpus.
type Source interface {
	Contains(ctx context.Context, password string) (bool, error)
}

// FileSource checks for substring containment in a plain-text corpus file.
// The content is cached after the first successful read.
type FileSource struct {
	path string

	mu      sync.RWMutex
	content string
	loaded  bool
}

// NewFileSource creates a FileSource for the corpus at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Contains reports whether password is a substring of the corpus content.
func (s *FileSource) Contains(ctx context.Context, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	content, err := s.corpus()
	if err != nil {
		return false, err
	}
	return strings.Contains(content, password), nil
}

// Reload drops the cached content so the next check re-reads the file.
func (s *FileSource) Reload() {
	s.mu.Lock()
	s.content, s.loaded = "", false
	s.mu.Unlock()
}

func (s *FileSource) corpus() (string, error) {
	s.mu.RLock()
	if s.loaded {
		content := s.content
		s.mu.RUnlock()
		return content, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.content, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorpusUnavailable, err)
	}
	s.content, s.loaded = string(data), true
	return s.content, nil
}

// Checker consults every configured source.
type Checker struct {
	sources []Source
}

// NewChecker creates a Checker over the given sources, skipping nil ones.
func NewChecker(sources ...Source) *Checker {
	c := &Checker{}
	for _, s := range sources {
		if s != nil {
			c.sources = append(c.sources, s)
		}
	}
	return c
}

// Check reports whether any source contains password. Sources that fail are
// treated as not containing it; their errors are joined and returned
// alongside the result.
func (c *Checker) Check(ctx context.Context, password string) (bool, error) {
	var errs []error
	for _, s := range c.sources {
		found, err := s.Contains(ctx, password)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if found {
			return true, errors.Join(errs...)
		}
	}
	return false, errors.Join(errs...)
}

// IsLeaked is Check with failures logged and otherwise ignored.
func (c *Checker) IsLeaked(ctx context.Context, password string) bool {
	leaked, err := c.Check(ctx, password)
	if err != nil {
		slog.WarnContext(ctx, "leak check degraded, treating as not leaked", "error", err)
	}
	return leaked
}

// Reload refreshes every source that caches its corpus.
func (c *Checker) Reload() {
	for _, s := range c.sources {
		if r, ok := s.(interface{ Reload() }); ok {
			r.Reload()
		}
	}
}
