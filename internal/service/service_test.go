package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vaultpass/passcheck-go/internal/classifier"
	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/leak"
	"github.com/vaultpass/passcheck-go/internal/wordlist"
)

// stubClassifier returns a fixed verdict and counts calls.
type stubClassifier struct {
	verdict classifier.Strength
	err     error
	calls   int
}

func (c *stubClassifier) Classify(context.Context, string) (classifier.Strength, error) {
	c.calls++
	return c.verdict, c.err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func newTestResources(t *testing.T, words, corpus string, c classifier.Classifier) *Resources {
	t.Helper()
	return &Resources{
		Words:      wordlist.NewLoader(writeFile(t, "words.txt", words)),
		Leaks:      leak.NewChecker(leak.NewFileSource(writeFile(t, "leaked.txt", corpus))),
		Classifier: c,
	}
}

func TestNewResourcesEntropyFallback(t *testing.T) {
	res := NewResources(config.Config{
		WordListPath:   "missing-words.txt",
		LeakCorpusPath: "missing-leaks.txt",
	})
	if _, ok := res.Classifier.(classifier.EntropyClassifier); !ok {
		t.Errorf("expected EntropyClassifier, got %T", res.Classifier)
	}
}

func TestNewResourcesBrokenModel(t *testing.T) {
	res := NewResources(config.Config{
		ModelPath:      filepath.Join(t.TempDir(), "model.json"),
		VectorizerPath: filepath.Join(t.TempDir(), "vectorizer.json"),
	})

	_, err := res.Classifier.Classify(context.Background(), "password")
	if !errors.Is(err, classifier.ErrArtifactUnavailable) {
		t.Errorf("expected ErrArtifactUnavailable, got %v", err)
	}
}

type stubSource struct{ found bool }

func (s stubSource) Contains(context.Context, string) (bool, error) { return s.found, nil }

func TestNewResourcesExtraSources(t *testing.T) {
	res := NewResources(config.Config{LeakCorpusPath: "missing-leaks.txt"}, stubSource{found: true})
	if !res.Leaks.IsLeaked(context.Background(), "anything") {
		t.Error("expected extra source to be consulted")
	}
}
