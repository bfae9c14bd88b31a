package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Expand   key.Binding
	New      key.Binding
	Delete   key.Binding
	Refresh  key.Binding
	SignIn   key.Binding
	SignOut  key.Binding
	Help     key.Binding
	Quit     key.Binding
	Save     key.Binding
	NextType key.Binding
	Cancel   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Expand:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show/hide")),
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new fragment")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		SignIn:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "sign in")),
		SignOut:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sign out")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		NextType: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "next type")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Delete, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.New, k.Delete, k.Refresh},
		{k.SignIn, k.SignOut},
		{k.Help, k.Quit},
	}
}

// editorKeys is the help shown while the draft editor has focus.
type editorKeys struct{ keyMap }

func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.NextType, k.Cancel}
}

func (k editorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
