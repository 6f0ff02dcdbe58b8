// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/fee-referendum/simulator"
)

var toneColors = map[simulator.Tone]lipgloss.Color{
	simulator.ToneRed:    lipgloss.Color("#dc2626"),
	simulator.ToneOrange: lipgloss.Color("#f97316"),
	simulator.ToneYellow: lipgloss.Color("#ca8a04"),
	simulator.ToneGreen:  lipgloss.Color("#16a34a"),
}

type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Step     lipgloss.Style
	StepOn   lipgloss.Style
	Panel    lipgloss.Style
	Focused  lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Footer   lipgloss.Style
}

func NewStyles() Styles {
	primary := lipgloss.Color("#a6192e")
	gold := lipgloss.Color("#cc9900")
	muted := lipgloss.Color("#6b7280")

	return Styles{
		Header: lipgloss.NewStyle().
			Background(gold).
			Foreground(primary).
			Padding(0, 1).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		Muted: lipgloss.NewStyle().Foreground(muted),
		Bold:  lipgloss.NewStyle().Bold(true),
		Step: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		StepOn: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1),
		Focused: lipgloss.NewStyle().Foreground(gold).Bold(true),
		Button: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			Background(muted).
			Foreground(lipgloss.Color("#e5e7eb")).
			Padding(0, 2),
		Success: lipgloss.NewStyle().Foreground(toneColors[simulator.ToneGreen]).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(toneColors[simulator.ToneRed]),
		Footer:  lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}

// Tone colours text for a phase severity
func (s Styles) Tone(t simulator.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(toneColors[t]).Bold(true)
}
