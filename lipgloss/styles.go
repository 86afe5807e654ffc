// Package lipgloss renders scan records as styled terminal text.
package lipgloss

import (
	"strconv"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/unireader"
)

// Styles maps a Theme to lipgloss styles for report rendering.
type Styles struct {
	Index lg.Style
	Text  lg.Style
	Error lg.Style
	Muted lg.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t unireader.Theme) Styles {
	return Styles{
		Index: lg.NewStyle().Foreground(ansiColor(t.Index)).Bold(true),
		Text:  lg.NewStyle().Foreground(ansiColor(t.Text)),
		Error: lg.NewStyle().Foreground(ansiColor(t.Error)).Bold(true),
		Muted: lg.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
	}
}

// PlainStyles returns Styles that add no formatting.
func PlainStyles() Styles {
	return Styles{
		Index: lg.NewStyle(),
		Text:  lg.NewStyle(),
		Error: lg.NewStyle(),
		Muted: lg.NewStyle(),
	}
}

func ansiColor(index int) lg.TerminalColor {
	if index < 0 {
		return lg.NoColor{}
	}
	return lg.Color(strconv.Itoa(index))
}
