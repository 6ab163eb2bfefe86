package crypto

import (
	"strings"
	"testing"
)

func TestGeneratePassword(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantErr: nil,
		},
		{
			name:    "minimum length",
			opts:    GeneratorOptions{Length: MinLength},
			wantErr: nil,
		},
		{
			name:    "maximum length",
			opts:    GeneratorOptions{Length: MaxLength},
			wantErr: nil,
		},
		{
			name:    "shuffled",
			opts:    GeneratorOptions{Length: 20, Shuffle: true},
			wantErr: nil,
		},
		{
			name:    "length too short",
			opts:    GeneratorOptions{Length: 11},
			wantErr: ErrLengthOutOfRange,
		},
		{
			name:    "length too long",
			opts:    GeneratorOptions{Length: 26},
			wantErr: ErrLengthOutOfRange,
		},
		{
			name:    "zero length",
			opts:    GeneratorOptions{},
			wantErr: ErrLengthOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GeneratePassword(tt.opts)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("GeneratePassword() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("GeneratePassword() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("GeneratePassword() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("GeneratePassword() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestGeneratePasswordEveryLength(t *testing.T) {
	for length := MinLength; length <= MaxLength; length++ {
		for _, shuffle := range []bool{false, true} {
			password, err := GeneratePassword(GeneratorOptions{Length: length, Shuffle: shuffle})
			if err != nil {
				t.Fatalf("GeneratePassword(%d) unexpected error: %v", length, err)
			}
			if len(password) != length {
				t.Errorf("GeneratePassword(%d) length = %d", length, len(password))
			}

			if !strings.ContainsAny(password, uppercaseChars) {
				t.Errorf("password %q missing uppercase character", password)
			}
			if !strings.ContainsAny(password, lowercaseChars) {
				t.Errorf("password %q missing lowercase character", password)
			}
			if !strings.ContainsAny(password, numberChars) {
				t.Errorf("password %q missing number character", password)
			}
			if !strings.ContainsAny(password, symbolChars) {
				t.Errorf("password %q missing symbol character", password)
			}
		}
	}
}

func TestGeneratePasswordTrailingOrder(t *testing.T) {
	// Run multiple times to reduce flakiness from randomness.
	for i := 0; i < 50; i++ {
		password, err := GeneratePassword(GeneratorOptions{Length: 12})
		if err != nil {
			t.Fatalf("GeneratePassword() unexpected error: %v", err)
		}

		tail := password[len(password)-4:]
		checks := []struct {
			charset string
			kind    string
		}{
			{symbolChars, "symbol"},
			{uppercaseChars, "uppercase"},
			{lowercaseChars, "lowercase"},
			{numberChars, "digit"},
		}
		for j, c := range checks {
			if !strings.ContainsRune(c.charset, rune(tail[j])) {
				t.Errorf("password %q: position %d = %q, want %s", password, 8+j, tail[j], c.kind)
			}
		}
	}
}

func TestGeneratePasswordCharset(t *testing.T) {
	password, err := GeneratePassword(GeneratorOptions{Length: MaxLength, Shuffle: true})
	if err != nil {
		t.Fatalf("GeneratePassword() unexpected error: %v", err)
	}
	for _, ch := range password {
		if !strings.ContainsRune(passwordChars, ch) {
			t.Errorf("password contains unexpected character %q", string(ch))
		}
	}
}

func TestGeneratePasswordProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := GeneratePassword(opts)
		if err != nil {
			t.Fatalf("GeneratePassword() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestSecureShufflePreservesElements(t *testing.T) {
	data := []byte("abcdefghij")
	if err := secureShuffle(data); err != nil {
		t.Fatalf("secureShuffle() unexpected error: %v", err)
	}
	for _, ch := range "abcdefghij" {
		if !strings.ContainsRune(string(data), ch) {
			t.Errorf("shuffled data %q lost %q", data, ch)
		}
	}
}
