package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Fire       key.Binding
	Confirm    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns the control hint shown at the start of a session.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns all key bindings grouped for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Confirm},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Control maps a key message to a game control.
// Returns false for keys that are not bound to a control.
func (k KeyMap) Control(msg tea.KeyMsg) (core.Control, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ControlLeft, true
	case key.Matches(msg, k.Right):
		return core.ControlRight, true
	case key.Matches(msg, k.Up):
		return core.ControlUp, true
	case key.Matches(msg, k.Down):
		return core.ControlDown, true
	case key.Matches(msg, k.Fire):
		return core.ControlFire, true
	case key.Matches(msg, k.Confirm):
		return core.ControlConfirm, true
	}
	return 0, false
}

// Rebind replaces the keys of the named controls. Unknown names and empty
// key lists are skipped; configuration validation reports them.
func (k *KeyMap) Rebind(keys map[string][]string) {
	for name, ks := range keys {
		c, ok := core.ParseControl(name)
		if !ok || len(ks) == 0 {
			continue
		}
		b := k.binding(c)
		b.SetKeys(ks...)
		b.SetHelp(helpKeys(ks), b.Help().Desc)
	}
}

// binding returns the binding for a control.
func (k *KeyMap) binding(c core.Control) *key.Binding {
	switch c {
	case core.ControlLeft:
		return &k.Left
	case core.ControlRight:
		return &k.Right
	case core.ControlUp:
		return &k.Up
	case core.ControlDown:
		return &k.Down
	case core.ControlFire:
		return &k.Fire
	default:
		return &k.Confirm
	}
}

// helpKeys formats keys for the help view.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
