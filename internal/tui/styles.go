package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary = lipgloss.Color("#00D9FF")
	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
	Muted   = lipgloss.Color("#6B7280")
	White   = lipgloss.Color("#FFFFFF")

	PromptStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Primary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Candidate styles
	CandidateStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Muted).
			Padding(0, 1)

	CandidateWarningStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Error).
				Padding(0, 1)

	MatchStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	MetaStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)

// candidateStyle returns the row style for a candidate.
func candidateStyle(warning, selected bool) lipgloss.Style {
	style := CandidateStyle
	if warning {
		style = CandidateWarningStyle
	}
	if selected {
		style = style.Reverse(true)
	}
	return style
}
