package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the watch face key bindings with built-in help text.
type KeyMap struct {
	PressFirst  key.Binding
	PressSecond key.Binding
	StopFirst   key.Binding
	StopSecond  key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PressFirst: key.NewBinding(
			key.WithKeys("1", "left"),
			key.WithHelp("1/←", "play/stop first"),
		),
		PressSecond: key.NewBinding(
			key.WithKeys("2", "right"),
			key.WithHelp("2/→", "play/stop second"),
		),
		StopFirst: key.NewBinding(
			key.WithKeys("!"),
			key.WithHelp("!", "stop first"),
		),
		StopSecond: key.NewBinding(
			key.WithKeys("@"),
			key.WithHelp("@", "stop second"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PressFirst, k.PressSecond, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PressFirst, k.PressSecond},
		{k.StopFirst, k.StopSecond},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
