package theme

import "charm.land/lipgloss/v2"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	MenuBar       *lipgloss.Style
	Toggle        *lipgloss.Style
	ActiveToggle  *lipgloss.Style
	Panel         *lipgloss.Style
	Item          *lipgloss.Style
	ItemIndicator *lipgloss.Style
	SelectedItem  *lipgloss.Style
	SubmenuArrow  *lipgloss.Style
	ScrollHitbox  *lipgloss.Style
	ScrollIdle    *lipgloss.Style

	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
}

var defaultStyles = Styles{
	MenuBar: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("249")),
	),
	Toggle: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	ActiveToggle: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1),
	),
	Panel: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")),
	),
	Item: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("255")).Bold(true),
	),
	SubmenuArrow: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("245")),
	),
	ScrollHitbox: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("33")),
	),
	ScrollIdle: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("239")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
