package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
//
// Styles should avoid layout-affecting options (padding, margin, width) so
// frame columns stay aligned with the document.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style
	Filler        lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	Status        lipgloss.Style
	StatusWarning lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Filler:        lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Reverse(true),
		StatusWarning: lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("203")),
	}
}
