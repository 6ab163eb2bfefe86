package service

import (
	"context"
	"errors"

	"github.com/vaultpass/passcheck-go/internal/classifier"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

var ErrPasswordRequired = errors.New("password is required")

// StrengthService evaluates password strength.
type StrengthService struct {
	res *Resources
}

// NewStrengthService creates a new StrengthService.
func NewStrengthService(res *Resources) *StrengthService {
	return &StrengthService{res: res}
}

// Evaluate checks the password against the leak corpora, classifies it and
// scores its composition. A leaked password is Weak without consulting the
// classifier.
func (s *StrengthService) Evaluate(ctx context.Context, req model.StrengthRequest) (model.StrengthResponse, error) {
	if req.Password == "" {
		return model.StrengthResponse{}, ErrPasswordRequired
	}

	verdict := classifier.Weak
	leaked := s.res.Leaks.IsLeaked(ctx, req.Password)
	if !leaked {
		var err error
		verdict, err = s.res.Classifier.Classify(ctx, req.Password)
		if err != nil {
			return model.StrengthResponse{}, err
		}
	}

	report := strength.Evaluate(req.Password)
	est := s.res.Estimator.Estimate(req.Password)

	return model.StrengthResponse{
		Leaked:    leaked,
		Strength:  verdict,
		Score:     report.Score,
		Fill:      report.Fill,
		Checks:    report.Checks,
		Entropy:   est.Entropy,
		CrackTime: est.CrackTime,
	}, nil
}
