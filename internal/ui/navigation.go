package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagetools/staging-console/internal/logging/events"
	"github.com/stagetools/staging-console/internal/navigator"
	"github.com/stagetools/staging-console/internal/transfer"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeBrowse {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+t":
		m.cycleView()
		return nil
	}
	switch m.view {
	case ViewFiles:
		return m.handleFilesKey(keyMsg)
	case ViewHardware:
		return m.handleHardwareKey(keyMsg)
	case ViewNetwork:
		return m.handleNetworkKey(keyMsg)
	case ViewSystem:
		return m.handleSystemKey(keyMsg)
	}
	return nil
}

func (m *Model) cycleView() {
	for i, v := range viewOrder {
		if v == m.view {
			m.view = viewOrder[(i+1)%len(viewOrder)]
			break
		}
	}
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) handleFilesKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		m.switchPane()
		return nil
	case "esc":
		current := m.focusedPane()
		if current.state.ClearFilter() {
			events.Pane.Filter(current.state.ID, "")
			m.syncViewport(current)
			return nil
		}
		return tea.Quit
	case "enter":
		m.handleEnterKey()
		return nil
	case "ctrl+h":
		m.toggleHidden()
		return nil
	case "ctrl+r":
		m.refreshPane(m.focusedPane())
		return nil
	case "f5":
		return m.startTransfer(false)
	case "f6":
		return m.startTransfer(true)
	case "up":
		m.moveCursor(func(p *pane) { p.state.MoveCursorUp() })
		return nil
	case "down":
		m.moveCursor(func(p *pane) { p.state.MoveCursorDown() })
		return nil
	case "pgup":
		m.moveCursor(func(p *pane) { p.state.MoveCursorPage(-m.maxVisibleRows()) })
		return nil
	case "pgdown":
		m.moveCursor(func(p *pane) { p.state.MoveCursorPage(m.maxVisibleRows()) })
		return nil
	case "home":
		m.moveCursor(func(p *pane) { p.state.MoveCursorHome() })
		return nil
	case "end":
		m.moveCursor(func(p *pane) { p.state.MoveCursorEnd() })
		return nil
	}
	m.handleTextInput(msg)
	return nil
}

func (m *Model) switchPane() {
	m.focus = 1 - m.focus
	events.Pane.Focus(m.focusedPane().state.ID)
}

func (m *Model) moveCursor(move func(*pane)) {
	current := m.focusedPane()
	move(current)
	events.Pane.Cursor(current.state.ID, current.state.Cursor)
	m.syncViewport(current)
}

// handleEnterKey opens the selected directory. The ".." row is a backward
// navigation, never a forward one.
func (m *Model) handleEnterKey() {
	current := m.focusedPane()
	row, ok := current.state.Current()
	if !ok {
		return
	}
	switch row.Kind {
	case navigator.RowUp:
		m.goBack(current)
	case navigator.RowEntry:
		if row.Entry.Kind != navigator.KindDirectory {
			return
		}
		if current.state.ClearFilter() {
			events.Pane.Filter(current.state.ID, "")
		}
		current.nav.NavigateTo(row.Entry.Path)
		current.sync()
		current.state.MoveCursorHome()
		current.state.ViewportOffset = 0
		events.Navigator.Navigate(current.state.ID, current.nav.CurrentPath())
		m.errMsg = ""
		m.updateWatcherPaths()
	}
}

func (m *Model) goBack(current *pane) {
	if current.state.ClearFilter() {
		events.Pane.Filter(current.state.ID, "")
	}
	current.nav.Back()
	current.sync()
	current.state.MoveCursorHome()
	current.state.ViewportOffset = 0
	events.Navigator.Back(current.state.ID, current.nav.CurrentPath())
	m.errMsg = ""
	m.updateWatcherPaths()
}

func (m *Model) toggleHidden() {
	for _, p := range m.panes {
		p.nav.SetShowHidden(!p.nav.ShowHidden())
		p.nav.Refresh()
		p.sync()
		m.syncViewport(p)
	}
	if m.focusedPane().nav.ShowHidden() {
		m.setInfo("Hidden files shown")
	} else {
		m.setInfo("Hidden files hidden")
	}
}

func (m *Model) refreshPane(p *pane) {
	p.nav.Refresh()
	p.sync()
	m.syncViewport(p)
	events.Navigator.Refresh(p.state.ID, p.nav.CurrentPath())
}

// startTransfer plans a copy or move from the source pane's selection into
// the destination pane's directory. Overwrites require confirmation; a
// declined confirmation issues no command.
func (m *Model) startTransfer(move bool) tea.Cmd {
	source := m.sourcePane()
	req, err := transfer.Plan(source.state.SelectedPath(), m.destPane().nav.CurrentPath(), move)
	if err != nil {
		if errors.Is(err, transfer.ErrNoSelection) {
			m.errMsg = "No file or folder selected"
		} else {
			m.errMsg = err.Error()
		}
		return nil
	}
	events.Transfer.Plan(req.Verb(), req.SourcePath, req.DestPath, req.Overwrite)
	cmd := transferCmd(m.runner, req)
	if req.Overwrite {
		m.startConfirm(fmt.Sprintf("%s exists in destination. Overwrite?", req.Filename()), cmd, func() {
			events.Transfer.Declined(req.Verb(), req.DestPath)
		})
		return nil
	}
	m.setInfo(fmt.Sprintf("%s %s…", req.Verb(), req.Filename()))
	return cmd
}

func (m *Model) syncViewport(p *pane) {
	if p == nil {
		return
	}
	p.state.EnsureCursorVisible(m.maxVisibleRows())
}
