// Package wordlist loads the dictionary used for passphrase generation.
package wordlist

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

var (
	ErrFileUnavailable = errors.New("word list file unavailable")
	ErrEmptyList       = errors.New("word list contains no words")
)

// Loader reads a whitespace-delimited word file once and memoizes the
// result, including a failed load.
type Loader struct {
	path string

	once  sync.Once
	words []string
	err   error
}

// NewLoader creates a Loader for the file at path. Nothing is read until
// the first call to Words.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Words returns the loaded word list. Concurrent callers before the first
// load share a single read. The returned slice must not be modified.
func (l *Loader) Words() ([]string, error) {
	l.once.Do(func() {
		l.words, l.err = load(l.path)
	})
	return l.words, l.err
}

// Path returns the file the loader reads from.
func (l *Loader) Path() string {
	return l.path
}

func load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnavailable, err)
	}
	return Parse(string(data))
}

// Parse splits raw corpus text on whitespace and lowercases each word.
func Parse(raw string) ([]string, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, ErrEmptyList
	}
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		words = append(words, strings.ToLower(f))
	}
	return words, nil
}
