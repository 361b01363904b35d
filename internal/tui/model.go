package tui

import (
	"context"
	"log/slog"

	"github.com/akyairhashvil/tminus/internal/config"
	"github.com/akyairhashvil/tminus/internal/countdown"
	"github.com/akyairhashvil/tminus/internal/input"
	"github.com/akyairhashvil/tminus/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldHours = iota
	fieldMinutes
	fieldCount
)

// RecomputeMsg tells the model a trigger fired.
type RecomputeMsg struct{}

// waitForRecompute blocks until the trigger signals and turns the signal
// into a message on the event loop.
func waitForRecompute(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return RecomputeMsg{}
	}
}

type Options struct {
	Clock countdown.Clock
	// Trigger defaults to a ticker with the Refresh period.
	Trigger   countdown.Trigger
	Refresh   string
	Theme     string
	Initial   input.Params
	AutoStart bool
}

// Model is the countdown widget.
type Model struct {
	engine    *countdown.Engine
	recompute chan struct{}
	keys      *HandlerRegistry
	inputs    [fieldCount]textinput.Model
	fields    [fieldCount]input.Field
	focus     int
	progress  progress.Model
	theme     Theme
	autoStart bool
	quitting  bool
	err       error
	width     int
	height    int
}

func NewModel(opts Options) Model {
	// One pending signal is enough: the recompute reads the wall clock, so
	// coalesced fires lose nothing.
	recompute := make(chan struct{}, 1)
	notify := func() {
		select {
		case recompute <- struct{}{}:
		default:
		}
	}
	trigger := opts.Trigger
	if trigger == nil {
		trigger = countdown.NewTicker(config.RefreshPeriod(opts.Refresh))
	}
	theme, ok := ThemeByName(opts.Theme)
	if !ok && opts.Theme != "" {
		slog.Warn("unknown theme, using default", "theme", opts.Theme)
	}

	m := Model{
		engine:    countdown.NewEngine(opts.Clock, trigger, notify),
		recompute: recompute,
		keys:      defaultKeyRegistry(),
		theme:     theme,
		autoStart: opts.AutoStart,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "00"
		ti.CharLimit = config.MaxFieldLength
		ti.Width = config.MaxFieldLength
		m.inputs[i] = ti
	}
	m.inputs[fieldHours].Focus()

	m.progress = progress.New(
		progress.WithGradient(theme.Gradient[0], theme.Gradient[1]),
		progress.WithoutPercentage(),
	)
	m.progress.Width = config.ProgressWidth

	if !opts.Initial.Empty() {
		m.engine.Load(opts.Initial.Seconds())
		slog.Debug("seeded from initial parameters", "seconds", m.engine.Total())
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.autoStart && m.engine.Remaining() > 0 {
		util.LogError(context.Background(), "autostart countdown", m.engine.Start())
	}
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle(config.AppName),
		waitForRecompute(m.recompute),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear error on keypress
	if m.err != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.err = nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progress.Width = util.Clamp(msg.Width-8, config.MinProgressWidth, config.ProgressWidth)
		return m, nil
	case RecomputeMsg:
		// Late fires after a pause or dispose fall through untouched.
		if m.engine.State() == countdown.Running && m.engine.Recompute() == 0 {
			slog.Info("countdown finished", "total", m.engine.Total())
		}
		return m, waitForRecompute(m.recompute)
	case tea.KeyMsg:
		if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
			return next, cmd
		}
	}
	return m.updateFocusedField(msg)
}

// updateFocusedField feeds msg to the focused text input and reverts any
// edit that would store an invalid value.
func (m Model) updateFocusedField(msg tea.Msg) (Model, tea.Cmd) {
	prev := m.fields[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if next := m.inputs[m.focus].Value(); next != prev && !m.fields[m.focus].Set(next) {
		m.inputs[m.focus].SetValue(prev)
	}
	return m, cmd
}

func (m Model) primaryLabel() string {
	return PrimaryLabel(m.fields[fieldHours].Value(), m.fields[fieldMinutes].Value())
}

func (m *Model) setFocus(idx int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (idx + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

// Dispose stops the engine's trigger. It is safe to call more than once.
func (m Model) Dispose() {
	m.engine.Dispose()
}

func handleCommit(m Model, _ string) (Model, tea.Cmd, bool) {
	seconds := input.Commit(m.fields[fieldHours].Value(), m.fields[fieldMinutes].Value())
	m.engine.Load(seconds)
	for i := range m.inputs {
		m.fields[i].Clear()
		m.inputs[i].Reset()
	}
	slog.Debug("duration committed", "seconds", seconds)
	return m, nil, true
}

func handleToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	if err := m.engine.Toggle(); err != nil {
		util.LogError(context.Background(), "toggle countdown", err)
		m.err = err
		return m, nil, true
	}
	slog.Debug("countdown toggled", "state", m.engine.State(), "remaining", m.engine.Remaining())
	return m, nil, true
}

func handleFocusNext(m Model, _ string) (Model, tea.Cmd, bool) {
	cmd := m.setFocus(m.focus + 1)
	return m, cmd, true
}

func handleFocusPrev(m Model, _ string) (Model, tea.Cmd, bool) {
	cmd := m.setFocus(m.focus - 1)
	return m, cmd, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	m.engine.Dispose()
	m.quitting = true
	return m, tea.Quit, true
}
