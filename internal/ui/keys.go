package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"mintodo/internal/config"
)

type keyMap struct {
	Quit      key.Binding
	Add       key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Edit      key.Binding
	Grab      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Help      key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:      binding("quit", k.Quit, "ctrl+c"),
		Add:       binding("add", k.Add),
		Up:        binding("up", k.Up, "up"),
		Down:      binding("down", k.Down, "down"),
		Toggle:    binding("toggle", k.Toggle),
		Delete:    binding("delete", k.Delete),
		Edit:      binding("edit", k.Edit),
		Grab:      binding("move", k.Grab),
		Confirm:   binding("confirm", k.Confirm),
		Cancel:    binding("cancel", k.Cancel),
		NextField: binding("next field", k.NextField),
		PrevField: binding("prev field", "shift+tab"),
		Help:      binding("help", k.Help),
	}
}

func binding(desc, primary string, extra ...string) key.Binding {
	keys := append([]string{primary}, extra...)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(primary), desc),
	)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Edit, k.Toggle, k.Delete, k.Grab, k.Help, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Confirm, k.Cancel}
}

func (k keyMap) grabHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel}
}
