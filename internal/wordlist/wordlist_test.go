package wordlist

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse(t *testing.T) {
	words, err := Parse("apple Brave\ncedar\t\n\n  delta\r\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "brave", "cedar", "delta"}, words)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(" \n\t ")
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestLoaderWords(t *testing.T) {
	loader := NewLoader(writeWords(t, "apple\nbrave\ncedar\n"))

	words, err := loader.Words()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "brave", "cedar"}, words)
}

func TestLoaderMemoizes(t *testing.T) {
	path := writeWords(t, "apple\nbrave\n")
	loader := NewLoader(path)

	first, err := loader.Words()
	require.NoError(t, err)

	// Later changes to the file are not observed.
	require.NoError(t, os.WriteFile(path, []byte("zebra\n"), 0o600))
	second, err := loader.Words()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoaderConcurrentFirstAccess(t *testing.T) {
	loader := NewLoader(writeWords(t, "apple brave cedar"))

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			words, err := loader.Words()
			assert.NoError(t, err)
			results[i] = words
		}(i)
	}
	wg.Wait()

	for _, words := range results {
		require.Len(t, words, 3)
		// Every caller sees the same backing array.
		assert.Same(t, &results[0][0], &words[0])
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing.txt"))

	_, err := loader.Words()
	assert.ErrorIs(t, err, ErrFileUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.Words()
	assert.ErrorIs(t, err, ErrFileUnavailable)
}

func TestLoaderEmptyFile(t *testing.T) {
	loader := NewLoader(writeWords(t, ""))

	_, err := loader.Words()
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestShippedWordList(t *testing.T) {
	words, err := NewLoader(filepath.Join("..", "..", "data", "words.txt")).Words()
	require.NoError(t, err)
	assert.Greater(t, len(words), 300)
	for _, w := range words {
		assert.Regexp(t, `^[a-z]+$`, w)
	}
}
