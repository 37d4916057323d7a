package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Interrupt is a terminal concern and never reaches the game.
type KeyMap struct {
	Flap      key.Binding
	Play      key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// NewKeyMap builds the bindings from the configured key names.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Flap:      binding(keys.Flap, "flap"),
		Play:      binding(keys.Play, "play"),
		Quit:      binding(keys.Quit, "quit"),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.ToLower(config.KeyLabel(keys)), desc),
	)
}

// Action returns the game action bound to msg, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Play):
		return core.ActionPlay
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Play, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap},
		{k.Play, k.Quit, k.Interrupt},
	}
}
