package service

import (
	"context"
	"log/slog"

	"github.com/vaultpass/passcheck-go/internal/classifier"
	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/leak"
	"github.com/vaultpass/passcheck-go/internal/wordlist"
)

// Resources holds the process-wide, read-only collaborators shared by every
// request. Build it once at startup and pass it by pointer.
type Resources struct {
	Words      *wordlist.Loader
	Leaks      *leak.Checker
	Classifier classifier.Classifier
	Estimator  classifier.Estimator
}

// NewResources wires the resources described by cfg. Extra leak sources,
// such as the breach table, are consulted after the corpus file. A model
// that fails to load disables classification without failing startup.
func NewResources(cfg config.Config, extra ...leak.Source) *Resources {
	sources := append([]leak.Source{leak.NewFileSource(cfg.LeakCorpusPath)}, extra...)

	return &Resources{
		Words:      wordlist.NewLoader(cfg.WordListPath),
		Leaks:      leak.NewChecker(sources...),
		Classifier: loadClassifier(cfg),
	}
}

func loadClassifier(cfg config.Config) classifier.Classifier {
	if !cfg.HasModel() {
		slog.Info("no model artifacts configured, using entropy classifier")
		return classifier.EntropyClassifier{}
	}

	p, err := classifier.LoadPipeline(cfg.VectorizerPath, cfg.ModelPath)
	if err != nil {
		slog.Error("model artifacts failed to load, strength checks disabled", "error", err)
		return unavailableClassifier{err: err}
	}
	slog.Info("model loaded", "model", cfg.ModelPath, "vectorizer", cfg.VectorizerPath)
	return p
}

// unavailableClassifier reports the load error on every call.
type unavailableClassifier struct {
	err error
}

func (c unavailableClassifier) Classify(context.Context, string) (classifier.Strength, error) {
	return classifier.Weak, c.err
}
