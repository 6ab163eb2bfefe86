// Package strength implements the heuristic composition score shown next to
// the classifier verdict.
package strength

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinLength is the length a password needs to earn the length point.
	MinLength = 12

	// MaxScore is the number of rules a password can satisfy.
	MaxScore = 5

	// SymbolChars is the set of symbols that count towards the symbol rule.
	SymbolChars = "@#$%^&+="
)

// Rule identifies one structural check.
type Rule string

const (
	RuleLength    Rule = "length"
	RuleLowercase Rule = "lowercase"
	RuleUppercase Rule = "uppercase"
	RuleDigit     Rule = "digit"
	RuleSymbol    Rule = "symbol"
)

// Check is one line of the checklist returned by Evaluate.
type Check struct {
	Rule      Rule   `json:"rule"`
	Label     string `json:"label"`
	Satisfied bool   `json:"satisfied"`
}

// Report is the full heuristic result for one password.
type Report struct {
	Score  int     `json:"score"`
	Fill   int     `json:"fill"`
	Checks []Check `json:"checks"`
}

type rules struct {
	length, lower, upper, digit, symbol bool
}

func inspect(password string) rules {
	r := rules{length: utf8.RuneCountInString(password) >= MinLength}
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			r.lower = true
		case c >= 'A' && c <= 'Z':
			r.upper = true
		case c >= '0' && c <= '9':
			r.digit = true
		case strings.ContainsRune(SymbolChars, c):
			r.symbol = true
		}
	}
	return r
}

func (r rules) score() int {
	n := 0
	for _, ok := range []bool{r.length, r.lower, r.upper, r.digit, r.symbol} {
		if ok {
			n++
		}
	}
	return n
}

// Score returns the number of satisfied rules, in [0, MaxScore].
func Score(password string) int {
	return inspect(password).score()
}

// Fill converts a score into a percentage for a progress bar.
func Fill(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score * 20
}

// Evaluate scores the password and returns the per-rule checklist in a
// stable order.
func Evaluate(password string) Report {
	r := inspect(password)
	score := r.score()
	return Report{
		Score: score,
		Fill:  Fill(score),
		Checks: []Check{
			{Rule: RuleLength, Label: "At least 12 characters", Satisfied: r.length},
			{Rule: RuleLowercase, Label: "Contains a lowercase letter", Satisfied: r.lower},
			{Rule: RuleUppercase, Label: "Contains an uppercase letter", Satisfied: r.upper},
			{Rule: RuleDigit, Label: "Contains a digit", Satisfied: r.digit},
			{Rule: RuleSymbol, Label: "Contains a symbol (" + SymbolChars + ")", Satisfied: r.symbol},
		},
	}
}
