package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagetools/staging-console/internal/hardware"
	"github.com/stagetools/staging-console/internal/logging/events"
	"github.com/stagetools/staging-console/internal/runner"
	"github.com/stagetools/staging-console/internal/sysconfig"
	"github.com/stagetools/staging-console/internal/transfer"
)

type transferDoneMsg struct {
	req transfer.Request
	err error
}

type scanDoneMsg struct {
	devices []hardware.Device
	err     error
}

type exportDoneMsg struct {
	path string
	err  error
}

type timezonesMsg struct {
	zones []string
	err   error
}

// actionDoneMsg reports the outcome of a confirmed system action.
type actionDoneMsg struct {
	label string
	err   error
}

type activationMsg struct {
	active bool
	err    error
}

func transferCmd(r runner.Runner, req transfer.Request) tea.Cmd {
	return func() tea.Msg {
		err := transfer.Execute(r, req)
		return transferDoneMsg{req: req, err: err}
	}
}

func scanCmd(r runner.Runner) tea.Cmd {
	return func() tea.Msg {
		devices, err := hardware.Scan(r)
		return scanDoneMsg{devices: devices, err: err}
	}
}

func exportCmd(devices []hardware.Device) tea.Cmd {
	return func() tea.Msg {
		name := hardware.ExportFilename(time.Now())
		f, err := os.Create(name)
		if err != nil {
			return exportDoneMsg{path: name, err: err}
		}
		defer f.Close()
		if err := hardware.ExportJSON(f, devices); err != nil {
			return exportDoneMsg{path: name, err: err}
		}
		return exportDoneMsg{path: name}
	}
}

func timezonesCmd(r runner.Runner) tea.Cmd {
	return func() tea.Msg {
		zones, err := sysconfig.ListTimeZones(r)
		return timezonesMsg{zones: zones, err: err}
	}
}

func applyCmd(r runner.Runner, label string, commands ...string) tea.Cmd {
	return func() tea.Msg {
		err := sysconfig.Apply(r, commands...)
		return actionDoneMsg{label: label, err: err}
	}
}

func activationCmd(r runner.Runner) tea.Cmd {
	return func() tea.Msg {
		active, err := sysconfig.CheckActivation(r)
		return activationMsg{active: active, err: err}
	}
}

func (m *Model) handleTransferDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(transferDoneMsg)
	if !ok {
		return nil
	}
	if done.err != nil {
		m.errMsg = done.err.Error()
		m.forceClearInfo()
		events.Transfer.Error(done.err)
		return nil
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("%s %s complete", done.req.Verb(), done.req.Filename()))
	events.Transfer.Success(done.req.Verb(), done.req.DestPath)
	m.refreshPanesAfterTransfer(done.req)
	return nil
}

// refreshPanesAfterTransfer re-lists the destination pane and, for a move,
// the source pane as well, leaving history untouched.
func (m *Model) refreshPanesAfterTransfer(req transfer.Request) {
	dest := m.destPane()
	dest.nav.Refresh()
	dest.sync()
	events.Navigator.Refresh(dest.state.ID, dest.nav.CurrentPath())
	if req.Move {
		source := m.sourcePane()
		source.nav.Refresh()
		source.sync()
		events.Navigator.Refresh(source.state.ID, source.nav.CurrentPath())
	}
}

func (m *Model) handleScanDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(scanDoneMsg)
	if !ok {
		return nil
	}
	m.scanning = false
	if done.err != nil {
		m.errMsg = done.err.Error()
		return nil
	}
	m.errMsg = ""
	m.scanned = true
	m.devices = done.devices
	hardware.Sort(m.devices, m.hwColumn, m.hwReverse)
	events.Hardware.Scan(len(m.devices))
	m.setInfo(fmt.Sprintf("Found %d devices", len(m.devices)))
	return nil
}

func (m *Model) handleExportDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(exportDoneMsg)
	if !ok {
		return nil
	}
	if done.err != nil {
		m.errMsg = done.err.Error()
		return nil
	}
	m.errMsg = ""
	events.Hardware.Export(done.path)
	m.setInfo(fmt.Sprintf("Exported to %s", done.path))
	return nil
}

func (m *Model) handleTimezonesMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(timezonesMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		return nil
	}
	m.errMsg = ""
	m.timezones = result.zones
	m.tzCursor = 0
	m.mode = ModeTimeZones
	return nil
}

func (m *Model) handleActionDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(actionDoneMsg)
	if !ok {
		return nil
	}
	if done.err != nil {
		m.errMsg = done.err.Error()
		m.forceClearInfo()
		events.System.Error(done.err)
		return nil
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("%s complete", done.label))
	return nil
}

func (m *Model) handleActivationMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(activationMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		return nil
	}
	m.errMsg = ""
	if result.active {
		m.setInfo("Windows is activated")
	} else {
		m.setInfo("Windows is NOT activated")
	}
	return nil
}
