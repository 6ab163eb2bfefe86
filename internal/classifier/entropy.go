package classifier

import (
	"context"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// Estimate summarizes the pattern-matching strength estimate.
type Estimate struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
}

// Estimator runs the zxcvbn pattern matcher.
type Estimator struct {
	// UserInputs are extra dictionary words penalized when found in a password.
	UserInputs []string
}

// Estimate analyzes password.
func (e Estimator) Estimate(password string) Estimate {
	result := zxcvbn.PasswordStrength(password, e.UserInputs)
	return Estimate{
		Score:     result.Score,
		Entropy:   result.Entropy,
		CrackTime: result.CrackTimeDisplay,
	}
}

// EntropyClassifier is used when no trained model is configured. It maps the
// zxcvbn 0-4 score onto the model's class codes.
type EntropyClassifier struct {
	Estimator Estimator
}

// Classify implements Classifier.
func (c EntropyClassifier) Classify(ctx context.Context, password string) (Strength, error) {
	if err := ctx.Err(); err != nil {
		return Weak, err
	}
	return StrengthFromCode(codeFromScore(c.Estimator.Estimate(password).Score))
}

func codeFromScore(score int) int {
	switch {
	case score <= 1:
		return 0
	case score <= 3:
		return 1
	default:
		return 2
	}
}
