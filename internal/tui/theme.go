package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Clock         lipgloss.Style
	ClockPaused   lipgloss.Style
	ClockDone     lipgloss.Style
	Label         lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonPrimary lipgloss.Style
	Status        lipgloss.Style
	Dim           lipgloss.Style
	Gradient      [2]string
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(0, 2),
		ClockPaused:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true).Padding(0, 2),
		ClockDone:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true).Blink(true).Padding(0, 2),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 2),
		ButtonPrimary: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 2),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Italic(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Gradient:      [2]string{"#5A56E0", "#EE6FF8"},
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 2),
		ClockPaused:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Bold(true).Padding(0, 2),
		ClockDone:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true).Blink(true).Padding(0, 2),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("60")).Padding(0, 2),
		ButtonPrimary: lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("141")).Bold(true).Padding(0, 2),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Italic(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Gradient:      [2]string{"#BD93F9", "#FF79C6"},
	},
}

// ThemeByName returns the named theme, or the default one with ok=false.
func ThemeByName(name string) (Theme, bool) {
	if t, ok := Themes[name]; ok {
		return t, true
	}
	return Themes["default"], false
}
