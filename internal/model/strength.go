package model

import (
	"github.com/vaultpass/passcheck-go/internal/classifier"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

// StrengthRequest carries the password to evaluate. It is never logged.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse combines the leak lookup, classifier verdict and
// heuristic checklist for one password.
type StrengthResponse struct {
	Leaked    bool                `json:"leaked"`
	Strength  classifier.Strength `json:"strength"`
	Score     int                 `json:"score"`
	Fill      int                 `json:"fill"`
	Checks    []strength.Check    `json:"checks"`
	Entropy   float64             `json:"entropy"`
	CrackTime string              `json:"crack_time"`
}
