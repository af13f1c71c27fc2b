package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Top, Bottom key.Binding
	Toggle, Edit, Delete  key.Binding
	FocusForm, Submit     key.Binding
	Confirm, Cancel       key.Binding
	SwitchButton          key.Binding
	Help, Quit, ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:          key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:       key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle")),
		Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		FocusForm:    key.NewBinding(key.WithKeys("a", "tab"), key.WithHelp("a/tab", "new item")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Confirm:      key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Cancel:       key.NewBinding(key.WithKeys("esc", "n", "N"), key.WithHelp("esc/n", "no")),
		SwitchButton: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp and FullHelp describe the table bindings to bubbles/help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Delete, k.FocusForm, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Toggle, k.Edit, k.Delete},
		{k.FocusForm, k.Help, k.Quit},
	}
}

// formHelp is shown while the add form has focus.
type formHelp struct{ submit, leave key.Binding }

func (f formHelp) ShortHelp() []key.Binding  { return []key.Binding{f.submit, f.leave} }
func (f formHelp) FullHelp() [][]key.Binding { return [][]key.Binding{f.ShortHelp()} }

func (k keyMap) form() formHelp {
	return formHelp{
		submit: k.Submit,
		leave:  key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc/tab", "back to list")),
	}
}
