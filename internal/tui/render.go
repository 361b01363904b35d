package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tminus/internal/config"
	"github.com/akyairhashvil/tminus/internal/countdown"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme
	sections := []string{
		t.Header.Render(config.AppName),
		m.renderClock(),
		m.progress.ViewAs(remainingFraction(m.engine.Remaining(), m.engine.Total())),
		m.renderFields(),
		m.renderButtons(),
		t.Status.Render(statusLabel(m.engine)),
	}
	if m.err != nil {
		sections = append(sections, fmt.Sprintf("Error: %v", m.err))
	}
	sections = append(sections, m.renderFooter())
	return t.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderClock() string {
	style := m.theme.ClockPaused
	switch {
	case m.engine.State() == countdown.Running:
		style = m.theme.Clock
	case statusLabel(m.engine) == "Time's up":
		style = m.theme.ClockDone
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Render(style.Render(FormatClock(m.engine.Remaining())))
}

func (m Model) renderFields() string {
	labels := [fieldCount]string{"Hours", "Minutes"}
	var parts []string
	for i := range m.inputs {
		box := m.theme.Input
		if i == m.focus {
			box = m.theme.InputFocused
		}
		field := box.Width(config.FieldWidth).Render(fieldView(m.inputs[i].View()))
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Center, m.theme.Label.Render(labels[i]+" "), field, "  "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// fieldView keeps a field to its display width. It never changes the
// stored value.
func fieldView(view string) string {
	return ansi.Truncate(view, config.MaxFieldLength+1, "")
}

func (m Model) renderButtons() string {
	buttons := []string{m.theme.ButtonPrimary.Render(m.primaryLabel())}
	if ShowSecondary(m.engine.Remaining()) {
		buttons = append(buttons, "  ", m.theme.Button.Render(SecondaryLabel(m.engine.State())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m Model) renderFooter() string {
	parts := []string{}
	if m.width == 0 || m.width >= config.CompactModeThreshold {
		parts = append(parts, m.keys.HelpFor(m))
	}
	parts = append(parts, "v"+versionLabel())
	return m.theme.Dim.Render(strings.Join(parts, "  "))
}
