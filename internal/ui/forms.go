package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagetools/staging-console/internal/sysconfig"
)

var staticIPLabels = []string{"IP address", "Prefix length", "Gateway", "Primary DNS", "Secondary DNS"}

// staticIPForm collects the five static-IP fields. DNS fields may stay
// empty; the rest are validated by sysconfig.
type staticIPForm struct {
	inputs []textinput.Model
	focus  int
	err    string
}

func newStaticIPForm() *staticIPForm {
	placeholders := []string{"192.168.1.10", "24", "192.168.1.1", "(optional)", "(optional)"}
	inputs := make([]textinput.Model, len(staticIPLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		inputs[i] = ti
	}
	inputs[0].Focus()
	return &staticIPForm{inputs: inputs}
}

func (f *staticIPForm) Config() sysconfig.StaticIP {
	value := func(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }
	return sysconfig.StaticIP{
		Address:      value(0),
		PrefixLength: value(1),
		Gateway:      value(2),
		DNS1:         value(3),
		DNS2:         value(4),
	}
}

func (f *staticIPForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyTab, tea.KeyDown:
			f.setFocus((f.focus + 1) % len(f.inputs))
			return nil, false, false
		case tea.KeyShiftTab, tea.KeyUp:
			f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
			return nil, false, false
		case tea.KeyEnter:
			if f.focus < len(f.inputs)-1 {
				f.setFocus(f.focus + 1)
				return nil, false, false
			}
			if err := f.Config().Validate(); err != nil {
				f.err = err.Error()
				return nil, false, false
			}
			f.err = ""
			return nil, true, false
		}
	}
	updated, cmd := f.inputs[f.focus].Update(msg)
	f.inputs[f.focus] = updated
	return cmd, false, false
}

func (f *staticIPForm) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

func (f *staticIPForm) View() string {
	lines := []string{"Set Static IP", ""}
	for i, label := range staticIPLabels {
		if styles.FormLabel != nil {
			label = styles.FormLabel.Render(label)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, f.inputs[i].View()))
	}
	if f.err != "" {
		lines = append(lines, "", styles.Error.Render(f.err))
	}
	lines = append(lines, "", "Enter next/submit. Esc to cancel.")
	return strings.Join(lines, "\n")
}

// renameForm collects the new computer name.
type renameForm struct {
	input textinput.Model
	err   string
}

func newRenameForm() *renameForm {
	ti := textinput.New()
	ti.Placeholder = "STAGING-01"
	ti.CharLimit = 15
	ti.Focus()
	return &renameForm{input: ti}
}

func (f *renameForm) Value() string {
	return strings.TrimSpace(f.input.Value())
}

func (f *renameForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			if f.Value() == "" {
				f.err = "Computer name is required"
				return nil, false, false
			}
			f.err = ""
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

func (f *renameForm) View() string {
	lines := []string{"Rename Computer", "", f.input.View()}
	if f.err != "" {
		lines = append(lines, "", styles.Error.Render(f.err))
	}
	lines = append(lines, "", "Press Enter to rename. Esc to cancel.")
	return strings.Join(lines, "\n")
}

func (m *Model) handleStaticIPForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.ipForm == nil {
		m.mode = ModeBrowse
		return true, nil
	}
	cmd, done, cancel := m.ipForm.Update(msg)
	if cancel {
		m.ipForm = nil
		m.mode = ModeBrowse
		return true, cmd
	}
	if done {
		cfg := m.ipForm.Config()
		m.ipForm = nil
		m.mode = ModeBrowse
		m.startConfirm(fmt.Sprintf("Apply static IP %s/%s?", cfg.Address, cfg.PrefixLength),
			applyCmd(m.runner, "Static IP setup", cfg.Commands()...), nil)
		return true, cmd
	}
	return true, cmd
}

func (m *Model) handleRenameForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.renameForm == nil {
		m.mode = ModeBrowse
		return true, nil
	}
	cmd, done, cancel := m.renameForm.Update(msg)
	if cancel {
		m.renameForm = nil
		m.mode = ModeBrowse
		return true, cmd
	}
	if done {
		name := m.renameForm.Value()
		m.renameForm = nil
		m.mode = ModeBrowse
		m.startConfirm(fmt.Sprintf("Rename computer to %s? A restart is required.", name),
			applyCmd(m.runner, "Rename", sysconfig.RenameComputerCommand(name)), nil)
		return true, cmd
	}
	return true, cmd
}

// handleTimeZoneList drives the modal time-zone picker.
func (m *Model) handleTimeZoneList(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "esc", "ctrl+c":
		m.mode = ModeBrowse
		return true, nil
	case "up":
		if m.tzCursor > 0 {
			m.tzCursor--
		}
		return true, nil
	case "down":
		if m.tzCursor < len(m.timezones)-1 {
			m.tzCursor++
		}
		return true, nil
	case "pgup":
		m.tzCursor -= m.maxVisibleRows()
		if m.tzCursor < 0 {
			m.tzCursor = 0
		}
		return true, nil
	case "pgdown":
		m.tzCursor += m.maxVisibleRows()
		if m.tzCursor >= len(m.timezones) {
			m.tzCursor = len(m.timezones) - 1
		}
		return true, nil
	case "enter":
		if m.tzCursor < 0 || m.tzCursor >= len(m.timezones) {
			return true, nil
		}
		zone := m.timezones[m.tzCursor]
		m.mode = ModeBrowse
		m.startConfirm(fmt.Sprintf("Set time zone to %s?", zone),
			applyCmd(m.runner, "Time zone", sysconfig.SetTimeZoneCommand(zone)), nil)
		return true, nil
	}
	return true, nil
}
