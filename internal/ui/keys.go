package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	ToList    key.Binding
	ToInput   key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Theme     key.Binding
	FlipTheme key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		ToList:    key.NewBinding(key.WithKeys("tab", "esc", "down"), key.WithHelp("tab", "tasks")),
		ToInput:   key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("a", "new task")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		FlipTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "dismiss")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// inputKeys and listKeys feed bubbles/help for the focused area.
type inputKeys struct{ k keyMap }

func (h inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.ToList, h.k.FlipTheme, h.k.ForceQuit}
}
func (h inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

type listKeys struct{ k keyMap }

func (h listKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Toggle, h.k.Delete, h.k.ToInput, h.k.Theme, h.k.Quit}
}
func (h listKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
