package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagetools/staging-console/internal/backend"
	"github.com/stagetools/staging-console/internal/logging/events"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent re-lists any pane currently showing the changed
// directory. Events for directories neither pane is on are stale and dropped.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
		return
	}
	for _, p := range m.panes {
		if p.nav.CurrentPath() != evt.Path {
			continue
		}
		p.nav.Refresh()
		p.sync()
		events.Navigator.Refresh(p.state.ID, p.nav.CurrentPath())
	}
}

// updateWatcherPaths points the watcher at both panes' current directories.
func (m *Model) updateWatcherPaths() {
	if m.backend == nil {
		return
	}
	m.backend.SetPaths(m.sourcePane().nav.CurrentPath(), m.destPane().nav.CurrentPath())
}
