package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorYellow  = lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#F0C674"}
	colorRed     = lipgloss.AdaptiveColor{Light: "#D33682", Dark: "#FF6B6B"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(1)

	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	tagSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Bold(true)

	breakdownLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Width(12)

	reasonStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	errStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			PaddingLeft(1)
)

var recommendationStyles = map[string]lipgloss.Style{
	"high":   lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
	"medium": lipgloss.NewStyle().Foreground(colorYellow),
	"low":    lipgloss.NewStyle().Foreground(colorDim),
	"avoid":  lipgloss.NewStyle().Foreground(colorRed),
}
