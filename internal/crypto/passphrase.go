package crypto

import (
	"errors"
	"strings"
)

const (
	MinWords         = 3
	MaxWords         = 8
	DefaultWordCount = 4

	// PassphraseSeparator joins the chosen words.
	PassphraseSeparator = "-"
)

var (
	ErrWordCountOutOfRange = errors.New("word count must be between 3 and 8")
	ErrNoWords             = errors.New("word list is empty")
)

// GeneratePassphrase picks count words uniformly at random, with
// replacement, and joins them with PassphraseSeparator.
func GeneratePassphrase(words []string, count int) (string, error) {
	if count < MinWords || count > MaxWords {
		return "", ErrWordCountOutOfRange
	}
	if len(words) == 0 {
		return "", ErrNoWords
	}

	picked := make([]string, count)
	for i := range picked {
		j, err := randIndex(len(words))
		if err != nil {
			return "", err
		}
		picked[i] = words[j]
	}

	return strings.Join(picked, PassphraseSeparator), nil
}
