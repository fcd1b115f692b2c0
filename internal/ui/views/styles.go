package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Highlight   lipgloss.Style
	CursorBg    lipgloss.Style
	SelectionBg lipgloss.Style
	Spark       lipgloss.Style
	SparkFocus  lipgloss.Style
	Unit        lipgloss.Style
	LogBox      lipgloss.Style
	LogEvent    lipgloss.Style
	Legend      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		CursorBg:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Spark:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		SparkFocus:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Unit:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		LogBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		LogEvent: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Legend:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
