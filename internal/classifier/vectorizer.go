package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// Vectorizer turns password tokens into a feature vector.
type Vectorizer interface {
	Transform(tokens []string) ([]float64, error)
	Features() int
}

// TfidfVectorizer is a fitted term-frequency/inverse-document-frequency
// vectorizer exported as JSON.
type TfidfVectorizer struct {
	Version     string         `json:"version"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	Lowercase   bool           `json:"lowercase"`
	SublinearTF bool           `json:"sublinear_tf"`
	Norm        string         `json:"norm"`
}

// LoadVectorizer reads and validates a vectorizer artifact.
func LoadVectorizer(path string) (*TfidfVectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArtifactUnavailable, err)
	}

	var v TfidfVectorizer
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: decoding vectorizer %s: %w", ErrArtifactUnavailable, path, err)
	}
	if err := v.validate(); err != nil {
		return nil, fmt.Errorf("%w: vectorizer %s: %w", ErrArtifactUnavailable, path, err)
	}
	return &v, nil
}

func (v *TfidfVectorizer) validate() error {
	if len(v.Vocabulary) == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	if len(v.IDF) != len(v.Vocabulary) {
		return fmt.Errorf("idf has %d weights for %d terms", len(v.IDF), len(v.Vocabulary))
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return fmt.Errorf("term %q has out of range index %d", term, idx)
		}
	}
	switch v.Norm {
	case "", "l2", "l1":
	default:
		return fmt.Errorf("unsupported norm %q", v.Norm)
	}
	return nil
}

// Features returns the length of the vectors Transform produces.
func (v *TfidfVectorizer) Features() int {
	return len(v.IDF)
}

// Transform weights token counts by idf and normalizes the result. Tokens
// outside the vocabulary are ignored.
func (v *TfidfVectorizer) Transform(tokens []string) ([]float64, error) {
	x := make([]float64, len(v.IDF))
	for _, tok := range tokens {
		if v.Lowercase {
			tok = strings.ToLower(tok)
		}
		if idx, ok := v.Vocabulary[tok]; ok {
			x[idx]++
		}
	}

	for i, tf := range x {
		if tf == 0 {
			continue
		}
		if v.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		x[i] = tf * v.IDF[i]
	}

	var norm float64
	switch v.Norm {
	case "l2":
		for _, f := range x {
			norm += f * f
		}
		norm = math.Sqrt(norm)
	case "l1":
		for _, f := range x {
			norm += math.Abs(f)
		}
	}
	if norm > 0 {
		for i := range x {
			x[i] /= norm
		}
	}
	return x, nil
}
