package service

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/leak"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/wordlist"
)

func newMissingChecker(t *testing.T) *leak.Checker {
	t.Helper()
	return leak.NewChecker(leak.NewFileSource(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(newTestResources(t, "apple", "", &stubClassifier{}))
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
}

func TestGenerate_CustomLength(t *testing.T) {
	svc := NewGeneratorService(newTestResources(t, "apple", "", &stubClassifier{}))
	resp, err := svc.Generate(model.GenerateRequest{Length: 25, Shuffle: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 25 {
		t.Errorf("expected length 25, got %d", resp.Length)
	}
}

func TestGenerate_LengthOutOfRange(t *testing.T) {
	svc := NewGeneratorService(newTestResources(t, "apple", "", &stubClassifier{}))
	for _, length := range []int{3, 11, 26, 200} {
		if _, err := svc.Generate(model.GenerateRequest{Length: length}); err != crypto.ErrLengthOutOfRange {
			t.Errorf("length %d: expected ErrLengthOutOfRange, got %v", length, err)
		}
	}
}

func TestPassphrase_Defaults(t *testing.T) {
	svc := NewGeneratorService(newTestResources(t, "apple brave cedar", "", &stubClassifier{}))
	resp, err := svc.Passphrase(model.PassphraseRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.WordCount != 4 {
		t.Errorf("expected 4 words, got %d", resp.WordCount)
	}
	if resp.Separator != "-" {
		t.Errorf("expected dash separator, got %q", resp.Separator)
	}
	if got := len(strings.Split(resp.Passphrase, resp.Separator)); got != 4 {
		t.Errorf("expected 4 words in %q, got %d", resp.Passphrase, got)
	}
}

func TestPassphrase_WordCountOutOfRange(t *testing.T) {
	svc := NewGeneratorService(newTestResources(t, "apple", "", &stubClassifier{}))
	for _, n := range []int{-1, 2, 9} {
		if _, err := svc.Passphrase(model.PassphraseRequest{WordCount: n}); err != crypto.ErrWordCountOutOfRange {
			t.Errorf("count %d: expected ErrWordCountOutOfRange, got %v", n, err)
		}
	}
}

func TestPassphrase_WordListMissing(t *testing.T) {
	res := newTestResources(t, "apple", "", &stubClassifier{})
	res.Words = wordlist.NewLoader(filepath.Join(t.TempDir(), "missing.txt"))
	svc := NewGeneratorService(res)

	_, err := svc.Passphrase(model.PassphraseRequest{WordCount: 3})
	if !errors.Is(err, wordlist.ErrFileUnavailable) {
		t.Errorf("expected ErrFileUnavailable, got %v", err)
	}

	// Password generation is unaffected.
	if _, err := svc.Generate(model.GenerateRequest{}); err != nil {
		t.Errorf("password generation failed: %v", err)
	}
}
