package tui

import "github.com/charmbracelet/bubbles/key"

// menuKeyMap holds the bindings shared by the main and pause menus.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// gameKeyMap holds the bindings of the running screen. Panel hotkeys only
// fire while the prompt is empty, otherwise the letters are typed.
type gameKeyMap struct {
	Submit    key.Binding
	Pause     key.Binding
	Inventory key.Binding
	Vault     key.Binding
	Skills    key.Binding
	Quit      key.Binding
}

func (k gameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Inventory, k.Vault, k.Skills, k.Pause}
}

func (k gameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Pause, k.Quit},
		{k.Inventory, k.Vault, k.Skills},
	}
}

func defaultGameKeyMap() gameKeyMap {
	return gameKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inventory"),
		),
		Vault: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "vault"),
		),
		Skills: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "skills"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
