package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Enter        key.Binding
	Back         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Sheet        key.Binding
	Refresh      key.Binding
	Copy         key.Binding
	Left         key.Binding
	Right        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Back:         key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	NextCategory: key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab/l", "next category")),
	PrevCategory: key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("h", "prev category")),
	Sheet:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "expand list")),
	Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Copy:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy address")),
	Left:         key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
	Right:        key.NewBinding(key.WithKeys("right", "l", "tab")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// homeKeys is the help view for the home screen
type homeKeys struct{ keyMap }

func (k homeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Enter, k.NextCategory, k.Sheet, k.Help, k.Quit}
}

func (k homeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.NextCategory, k.PrevCategory, k.Sheet},
		{k.Refresh, k.Help, k.Quit},
	}
}

// marketKeys is the help view for the market detail screen
type marketKeys struct{ keyMap }

func (k marketKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Back, k.Quit}
}

func (k marketKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Copy, k.Back},
		{k.Help, k.Quit},
	}
}
