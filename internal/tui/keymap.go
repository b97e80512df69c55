package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the gallery-level key bindings. Section-specific bindings
// live on the components themselves.
type KeyMap struct {
	NextSection key.Binding
	PrevSection key.Binding
	ToggleMode  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the stock gallery bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous section"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle range mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection},
		{k.ToggleMode, k.Help, k.Quit},
	}
}
