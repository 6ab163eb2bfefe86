package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// passwordChars is the pool every unconstrained position is drawn from.
	passwordChars = uppercaseChars + lowercaseChars + numberChars + symbolChars

	MinLength     = 12
	MaxLength     = 25
	DefaultLength = 16
)

var ErrLengthOutOfRange = errors.New("password length must be between 12 and 25")

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length int
	// Shuffle spreads the guaranteed characters over the whole password.
	// When false they occupy the last four positions as symbol, uppercase,
	// lowercase, digit.
	Shuffle bool
}

// DefaultOptions returns 16 characters with the guaranteed tail.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{Length: DefaultLength}
}

// GeneratePassword creates a random password of exactly opts.Length
// characters. The first Length-4 characters come uniformly from the full
// pool; the final four guarantee one symbol, one uppercase letter, one
// lowercase letter and one digit.
func GeneratePassword(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", ErrLengthOutOfRange
	}

	required := []string{symbolChars, uppercaseChars, lowercaseChars, numberChars}
	free := opts.Length - len(required)
	result := make([]byte, opts.Length)

	for i := 0; i < free; i++ {
		ch, err := randChar(passwordChars)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i, charset := range required {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[free+i] = ch
	}

	if opts.Shuffle {
		if err := secureShuffle(result); err != nil {
			return "", err
		}
	}

	return string(result), nil
}

// randIndex returns a uniform index in [0, n) using crypto/rand.
func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

func randChar(charset string) (byte, error) {
	i, err := randIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
