package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	Help         lipgloss.Style
	Scroll       lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Card         lipgloss.Style
	CardCursor   lipgloss.Style
	CardEntering lipgloss.Style
	CardTitle    lipgloss.Style
	ListCursor   lipgloss.Style
	Loaded       lipgloss.Style
	Pending      lipgloss.Style
	Lightbox     lipgloss.Style
	Caption      lipgloss.Style
	Control      lipgloss.Style
	Tag          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")),
		ButtonActive: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("125")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		CardCursor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")),
		CardEntering: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("78")), // green while fading in
		CardTitle:  lipgloss.NewStyle().Bold(true),
		ListCursor: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Loaded:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Lightbox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("125")).
			Padding(0, 1),
		Caption: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		Control: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
