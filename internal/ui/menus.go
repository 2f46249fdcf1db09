package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagetools/staging-console/internal/hardware"
	"github.com/stagetools/staging-console/internal/logging/events"
	"github.com/stagetools/staging-console/internal/sysconfig"
)

// menuItem is one selectable action in the network or system view.
type menuItem struct {
	label string
	run   func(m *Model) tea.Cmd
}

var networkMenu = []menuItem{
	{label: "Set Static IP", run: func(m *Model) tea.Cmd {
		m.ipForm = newStaticIPForm()
		m.mode = ModeStaticIPForm
		return nil
	}},
	{label: "Enable DHCP", run: func(m *Model) tea.Cmd {
		events.System.Action("network:dhcp")
		m.startConfirm("Enable DHCP on all adapters?",
			applyCmd(m.runner, "DHCP", sysconfig.EnableDHCPCommand()), nil)
		return nil
	}},
}

var systemMenu = []menuItem{
	{label: "Rename Computer", run: func(m *Model) tea.Cmd {
		m.renameForm = newRenameForm()
		m.mode = ModeRenameForm
		return nil
	}},
	{label: "Set Time Zone", run: func(m *Model) tea.Cmd {
		events.System.Action("system:timezone")
		m.setInfo("Loading time zones…")
		return timezonesCmd(m.runner)
	}},
	{label: "Check Activation Status", run: func(m *Model) tea.Cmd {
		events.System.Action("system:activation-status")
		return activationCmd(m.runner)
	}},
	{label: "Activate Windows", run: func(m *Model) tea.Cmd {
		events.System.Action("system:activate")
		m.startConfirm("Run Windows activation now?",
			applyCmd(m.runner, "Activation", sysconfig.ActivateCommand()), nil)
		return nil
	}},
	{label: "Restart Computer", run: func(m *Model) tea.Cmd {
		events.System.Action("system:restart")
		m.startConfirm("Restart the computer now?",
			applyCmd(m.runner, "Restart", sysconfig.RestartCommand()), nil)
		return nil
	}},
}

func (m *Model) handleMenuKey(msg tea.KeyMsg, items []menuItem, cursor *int) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.view = ViewFiles
		return nil
	case "up":
		if *cursor > 0 {
			*cursor--
		} else {
			*cursor = len(items) - 1
		}
		return nil
	case "down":
		if *cursor < len(items)-1 {
			*cursor++
		} else {
			*cursor = 0
		}
		return nil
	case "enter":
		if *cursor < 0 || *cursor >= len(items) {
			return nil
		}
		m.errMsg = ""
		return items[*cursor].run(m)
	}
	return nil
}

func (m *Model) handleNetworkKey(msg tea.KeyMsg) tea.Cmd {
	return m.handleMenuKey(msg, networkMenu, &m.netCursor)
}

func (m *Model) handleSystemKey(msg tea.KeyMsg) tea.Cmd {
	return m.handleMenuKey(msg, systemMenu, &m.sysCursor)
}

func (m *Model) handleHardwareKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.view = ViewFiles
		return nil
	case "s":
		if m.scanning {
			return nil
		}
		m.scanning = true
		m.errMsg = ""
		m.setInfo("Scanning hardware…")
		return scanCmd(m.runner)
	case "c":
		m.hwColumn = m.hwColumn.Next()
		hardware.Sort(m.devices, m.hwColumn, m.hwReverse)
		return nil
	case "r":
		m.hwReverse = !m.hwReverse
		hardware.Sort(m.devices, m.hwColumn, m.hwReverse)
		return nil
	case "e":
		if !m.scanned {
			m.errMsg = "Nothing to export. Scan first."
			return nil
		}
		return exportCmd(m.devices)
	}
	return nil
}
