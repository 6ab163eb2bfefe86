package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Model predicts a class code from a feature vector.
type Model interface {
	Predict(features []float64) (int, error)
	Features() int
}

// LinearModel is a fitted multi-class linear classifier exported as JSON.
// A binary model carries a single coefficient row.
type LinearModel struct {
	Version   string      `json:"version"`
	Classes   []int       `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// LoadModel reads and validates a model artifact.
func LoadModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArtifactUnavailable, err)
	}

	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: decoding model %s: %w", ErrArtifactUnavailable, path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%w: model %s: %w", ErrArtifactUnavailable, path, err)
	}
	return &m, nil
}

func (m *LinearModel) binary() bool {
	return len(m.Classes) == 2 && len(m.Coef) == 1
}

func (m *LinearModel) validate() error {
	if len(m.Classes) < 2 {
		return fmt.Errorf("need at least two classes, got %d", len(m.Classes))
	}
	if !m.binary() && len(m.Coef) != len(m.Classes) {
		return fmt.Errorf("%d coefficient rows for %d classes", len(m.Coef), len(m.Classes))
	}
	if len(m.Intercept) != len(m.Coef) {
		return fmt.Errorf("%d intercepts for %d coefficient rows", len(m.Intercept), len(m.Coef))
	}
	n := len(m.Coef[0])
	if n == 0 {
		return fmt.Errorf("empty coefficient row")
	}
	for i, row := range m.Coef {
		if len(row) != n {
			return fmt.Errorf("coefficient row %d has %d features, want %d", i, len(row), n)
		}
	}
	return nil
}

// Features returns the expected feature vector length.
func (m *LinearModel) Features() int {
	return len(m.Coef[0])
}

// Predict returns the class with the highest decision value.
func (m *LinearModel) Predict(features []float64) (int, error) {
	if len(features) != m.Features() {
		return 0, fmt.Errorf("%w: got %d features, model expects %d", ErrClassification, len(features), m.Features())
	}

	best, bestScore := -1, math.Inf(-1)
	for i, row := range m.Coef {
		score := m.Intercept[i]
		for j, w := range row {
			score += w * features[j]
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return 0, fmt.Errorf("%w: non-finite decision value", ErrClassification)
		}
		if m.binary() {
			if score > 0 {
				return m.Classes[1], nil
			}
			return m.Classes[0], nil
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return m.Classes[best], nil
}
