package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vaultpass/passcheck-go/internal/classifier"
	"github.com/vaultpass/passcheck-go/internal/model"
)

const barWidth = 20

var (
	weakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	strongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func styleFor(s classifier.Strength) lipgloss.Style {
	switch s {
	case classifier.Strong:
		return strongStyle
	case classifier.Medium:
		return mediumStyle
	default:
		return weakStyle
	}
}

// renderBar draws fill (0-100) as a fixed-width bar.
func renderBar(fill int, style lipgloss.Style) string {
	filled := fill * barWidth / 100
	return style.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barWidth-filled))
}

func renderReport(resp model.StrengthResponse) string {
	style := styleFor(resp.Strength)

	var b strings.Builder
	fmt.Fprintf(&b, "Strength: %s\n", style.Render(strings.ToUpper(resp.Strength.String())))
	if resp.Leaked {
		fmt.Fprintln(&b, weakStyle.Render("This password appears in a known breach corpus."))
	}
	fmt.Fprintf(&b, "Score:    %s %d/5\n", renderBar(resp.Fill, style), resp.Score)
	for _, c := range resp.Checks {
		mark := weakStyle.Render("✗")
		if c.Satisfied {
			mark = strongStyle.Render("✓")
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, c.Label)
	}
	fmt.Fprintf(&b, "Entropy:  %.1f bits (crack time: %s)\n", resp.Entropy, resp.CrackTime)
	return b.String()
}
