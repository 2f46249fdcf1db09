package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagetools/staging-console/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleTextInput feeds printable keys into the focused pane's filter.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.focusedPane()
	switch msg.String() {
	case "ctrl+u":
		if !current.state.ClearFilter() {
			return false
		}
		m.filterChanged(current)
		events.Pane.Filter(current.state.ID, "")
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace:
		if !current.state.BackspaceFilter() {
			m.goBack(current)
			return true
		}
		m.filterChanged(current)
		events.Pane.Filter(current.state.ID, current.state.Filter)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		current.state.AppendFilter(string(msg.Runes))
		m.filterChanged(current)
		events.Pane.Filter(current.state.ID, current.state.Filter)
		return true
	case tea.KeySpace:
		current.state.AppendFilter(" ")
		m.filterChanged(current)
		events.Pane.Filter(current.state.ID, current.state.Filter)
		return true
	}
	return false
}

func (m *Model) filterChanged(p *pane) {
	m.filterCursorDirty = true
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport(p)
}

func (m *Model) filterPrompt() string {
	current := m.focusedPane()
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := current.state.Filter
	if text == "" {
		placeholder := "(type to filter)"
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		runes := []rune(placeholder)
		caret := m.renderFilterCursor(string(runes[0]))
		rest := string(runes[1:])
		if styles.FilterPlaceholder != nil {
			rest = styles.FilterPlaceholder.Render(rest)
		}
		return prompt + caret + rest
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
		text = styles.Filter.Render(text)
	}
	return prompt + text + m.renderFilterCursor(" ")
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	return base.Reverse(true).Render(char)
}
