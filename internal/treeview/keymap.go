package treeview

import "github.com/charmbracelet/bubbles/key"

// keyMap is the treeview inspector's keybinding set, rendered as the
// help footer.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "collapse/expand"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) helpLine() string {
	return k.Up.Help().Key + " " + k.Up.Help().Desc + "  " +
		k.Down.Help().Key + " " + k.Down.Help().Desc + "  " +
		k.Toggle.Help().Key + " " + k.Toggle.Help().Desc + "  " +
		k.Quit.Help().Key + " " + k.Quit.Help().Desc
}
