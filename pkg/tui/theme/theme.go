package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Footer FooterTheme
	Panel  PanelTheme
}

// HeaderTheme styles the line above the editor.
type HeaderTheme struct {
	Title lipgloss.Style
	Date  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Hint   lipgloss.Style
	Paused lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles the framed editor.
type PanelTheme struct {
	Frame       lipgloss.Style
	PausedFrame lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("212")).
		Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true),
			Date:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
			Paused: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
		Panel: PanelTheme{
			Frame:       frame,
			PausedFrame: frame.BorderForeground(lipgloss.Color("214")),
		},
	}
}
