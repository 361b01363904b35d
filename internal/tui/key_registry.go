package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Label       string
	Handler     KeyHandler
	Description string
	// Describe overrides Description for labels that follow model state.
	Describe func(m Model) string
	// Enabled limits the binding to some model states; nil means always.
	Enabled  func(m Model) bool
	Priority int
}

func (b KeyBinding) AppliesTo(m Model) bool {
	return b.Enabled == nil || b.Enabled(m)
}

func (b KeyBinding) helpText(m Model) string {
	if b.Describe != nil {
		return b.Describe(m)
	}
	return b.Description
}

func (b KeyBinding) label() string {
	if b.Label != "" {
		return b.Label
	}
	return b.Key
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(m Model) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(m) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(m Model) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(m) {
		desc := b.helpText(m)
		if desc == "" || seen[desc] {
			continue
		}
		seen[desc] = true
		parts = append(parts, "["+b.label()+"]"+desc)
	}
	return strings.Join(parts, " | ")
}

func defaultKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Key:      "enter",
		Handler:  handleCommit,
		Describe: func(m Model) string { return m.primaryLabel() },
		Priority: 10,
	})
	r.Register(KeyBinding{
		Key:      " ",
		Label:    "space",
		Handler:  handleToggle,
		Describe: func(m Model) string { return SecondaryLabel(m.engine.State()) },
		Enabled:  func(m Model) bool { return ShowSecondary(m.engine.Remaining()) },
		Priority: 10,
	})
	r.Register(KeyBinding{Key: "tab", Handler: handleFocusNext, Description: "Next field", Priority: 5})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handleFocusPrev, Priority: 5})
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		b := KeyBinding{Key: k, Handler: handleQuit}
		if k == "q" {
			b.Description = "Quit"
		}
		r.Register(b)
	}
	return r
}
