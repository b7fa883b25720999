package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"focustoday/internal/config"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Edit    key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Home    key.Binding
	About   key.Binding
	Quit    key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:    key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Add:     key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add")),
		Edit:    key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(k.Edit, "edit")),
		Toggle:  key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(helpName(k.Toggle), "toggle")),
		Delete:  key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete")),
		Confirm: key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "done")),
		Cancel:  key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "done")),
		Home:    key.NewBinding(key.WithKeys(k.Home), key.WithHelp(k.Home, "home")),
		About:   key.NewBinding(key.WithKeys(k.About), key.WithHelp(k.About, "about")),
		Quit:    key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
	}
}

func helpName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap for the list view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Edit, k.Toggle, k.Delete, k.Home, k.About, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// editHelp is the footer while a goal is being typed.
func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}
