package classifier

import (
	"context"
	"fmt"
)

// Pipeline classifies by tokenizing, vectorizing and predicting.
type Pipeline struct {
	vectorizer Vectorizer
	model      Model
}

// NewPipeline joins a vectorizer and a model whose dimensions agree.
func NewPipeline(v Vectorizer, m Model) (*Pipeline, error) {
	if v.Features() != m.Features() {
		return nil, fmt.Errorf("%w: vectorizer produces %d features, model expects %d",
			ErrArtifactUnavailable, v.Features(), m.Features())
	}
	return &Pipeline{vectorizer: v, model: m}, nil
}

// LoadPipeline loads both artifacts from disk.
func LoadPipeline(vectorizerPath, modelPath string) (*Pipeline, error) {
	v, err := LoadVectorizer(vectorizerPath)
	if err != nil {
		return nil, err
	}
	m, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	return NewPipeline(v, m)
}

// Classify implements Classifier.
func (p *Pipeline) Classify(ctx context.Context, password string) (Strength, error) {
	if err := ctx.Err(); err != nil {
		return Weak, err
	}

	features, err := p.vectorizer.Transform(Tokenize(password))
	if err != nil {
		return Weak, fmt.Errorf("%w: %w", ErrClassification, err)
	}

	code, err := p.model.Predict(features)
	if err != nil {
		return Weak, err
	}
	return StrengthFromCode(code)
}
