// Package classifier adapts an externally trained password-strength model to
// a three-level verdict.
package classifier

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrArtifactUnavailable = errors.New("classifier artifact unavailable")
	ErrClassification      = errors.New("classification failed")
)

// Strength is the coarse verdict for a password.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return fmt.Sprintf("strength(%d)", int(s))
	}
}

// MarshalText encodes the strength as its lowercase name.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StrengthFromCode maps a model class code to a Strength. Code 2 is the
// model's top class and any larger code saturates to Strong. Negative codes
// are never produced by a well-formed model.
func StrengthFromCode(code int) (Strength, error) {
	switch {
	case code < 0:
		return Weak, fmt.Errorf("%w: unexpected class code %d", ErrClassification, code)
	case code == 0:
		return Weak, nil
	case code == 1:
		return Medium, nil
	default:
		return Strong, nil
	}
}

// Classifier produces a strength verdict for a password. Implementations
// must be safe for concurrent use.
type Classifier interface {
	Classify(ctx context.Context, password string) (Strength, error)
}

// Tokenize splits a password into one token per character.
func Tokenize(password string) []string {
	tokens := make([]string, 0, len(password))
	for _, r := range password {
		tokens = append(tokens, string(r))
	}
	return tokens
}
