package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the simulator.
type KeyMap struct {
	Down       key.Binding
	Up         key.Binding
	CoarseDown key.Binding
	CoarseUp   key.Binding
	ToggleA    key.Binding
	ToggleB    key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "turn down"),
		),
		Up: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "turn up"),
		),
		CoarseDown: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "turn down x10"),
		),
		CoarseUp: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "turn up x10"),
		),
		ToggleA: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "button A"),
		),
		ToggleB: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "button B"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// monitorKeyMap only allows quitting; the hardware is not ours to move.
func monitorKeyMap() KeyMap {
	k := DefaultKeyMap()
	for _, b := range []*key.Binding{&k.Down, &k.Up, &k.CoarseDown, &k.CoarseUp, &k.ToggleA, &k.ToggleB} {
		b.SetEnabled(false)
	}
	return k
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.CoarseDown, k.CoarseUp, k.ToggleA, k.ToggleB, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.CoarseDown, k.CoarseUp},
		{k.ToggleA, k.ToggleB, k.Quit},
	}
}
