package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// confirmState holds a pending yes/no question. run fires only on an
// explicit yes; declining restores browse mode with no side effects.
type confirmState struct {
	message  string
	run      tea.Cmd
	declined func()
}

func (m *Model) startConfirm(message string, run tea.Cmd, declined func()) {
	m.confirm = &confirmState{message: message, run: run, declined: declined}
	m.mode = ModeConfirm
}

func (m *Model) handleConfirm(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	pending := m.confirm
	if pending == nil {
		m.mode = ModeBrowse
		return true, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.confirm = nil
		m.mode = ModeBrowse
		return true, pending.run
	case "n", "N", "esc", "ctrl+c":
		m.confirm = nil
		m.mode = ModeBrowse
		if pending.declined != nil {
			pending.declined()
		}
		return true, nil
	}
	return true, nil
}
