package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/stagetools/staging-console/internal/format/table"
	"github.com/stagetools/staging-console/internal/navigator"
)

const paneGap = 2

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.tabsHeader()
	switch m.mode {
	case ModeStaticIPForm:
		if m.ipForm != nil {
			return header + "\n\n" + m.ipForm.View()
		}
	case ModeRenameForm:
		if m.renameForm != nil {
			return header + "\n\n" + m.renameForm.View()
		}
	case ModeTimeZones:
		return m.viewTimeZones(header)
	}
	switch m.view {
	case ViewHardware:
		return m.viewHardware(header)
	case ViewNetwork:
		return m.viewMenu(header, "Network Setup", networkMenu, m.netCursor)
	case ViewSystem:
		return m.viewMenu(header, "System Setup", systemMenu, m.sysCursor)
	default:
		return m.viewFiles(header)
	}
}

func (m *Model) tabsHeader() string {
	segments := make([]string, 0, len(viewOrder))
	for _, v := range viewOrder {
		label := " " + v.String() + " "
		if v == m.view {
			if styles.TabActive != nil {
				label = styles.TabActive.Render(label)
			}
		} else if styles.Tab != nil {
			label = styles.Tab.Render(label)
		}
		segments = append(segments, label)
	}
	return strings.Join(segments, " ")
}

func (m *Model) viewFiles(header string) string {
	paneW := m.paneWidth()
	rowsH := m.maxVisibleRows()

	left := m.renderPane(m.sourcePane(), "Source", paneW, rowsH, m.focus == paneSource)
	right := m.renderPane(m.destPane(), "Destination", paneW, rowsH, m.focus == paneDest)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", paneGap), right)

	sections := []string{header, panes}
	if m.showFooter {
		footer := "tab pane  enter open  backspace up  F5 copy  F6 move  ctrl+h hidden  ctrl+r refresh  ctrl+t view  ctrl+c quit"
		if styles.Footer != nil {
			footer = styles.Footer.Render(truncateText(footer, m.width))
		}
		sections = append(sections, "", footer)
	}
	sections = append(sections, m.bottomBar()...)
	return strings.Join(sections, "\n")
}

// renderPane draws one pane as a fixed-width column: a title row with the
// current path followed by the visible row window.
func (m *Model) renderPane(p *pane, title string, width, height int, focused bool) string {
	titleStyle := styles.PaneTitle
	if focused {
		titleStyle = styles.PaneFocused
	}
	titleText := truncateText(fmt.Sprintf("%s: %s", title, p.nav.CurrentPath()), width)
	lines := []string{padToWidth(render(titleStyle, padText(titleText, width)), width)}

	visible, start := p.state.VisibleRows(height)
	entryIdx := 0
	for _, row := range p.state.Rows[:start] {
		if row.Kind == navigator.RowEntry {
			entryIdx++
		}
	}
	for i, row := range visible {
		selected := focused && start+i == p.state.Cursor
		stripe := entryIdx
		if row.Kind == navigator.RowEntry {
			entryIdx++
		}
		lines = append(lines, m.renderRow(row, width, selected, stripe))
	}
	for len(lines) < height+1 {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// renderRow lays out one pane row: cursor indicator, name, right-aligned
// size for files. Zebra striping alternates on the entry-row index so
// placeholders and the ".." row never shift the stripes.
func (m *Model) renderRow(row navigator.Row, width int, selected bool, stripe int) string {
	indicator := " "
	if selected {
		indicator = "▌"
	}
	name := rowText(row)
	size := ""
	lineStyle := styles.Item
	switch row.Kind {
	case navigator.RowPlaceholder:
		lineStyle = styles.Placeholder
	case navigator.RowEntry:
		if row.Entry.Kind == navigator.KindDirectory {
			lineStyle = styles.Directory
		} else {
			size = humanize.Bytes(uint64(row.Entry.Size))
			if stripe%2 == 0 {
				lineStyle = styles.RowEven
			} else {
				lineStyle = styles.RowOdd
			}
		}
	}
	if selected {
		lineStyle = styles.SelectedItem
	}

	bodyW := width - 2
	if bodyW < 1 {
		bodyW = 1
	}
	var body string
	if size != "" && bodyW > len(size)+1 {
		nameW := bodyW - len(size) - 1
		body = padText(truncateText(name, nameW), nameW) + " " + size
	} else {
		body = padText(truncateText(name, bodyW), bodyW)
	}

	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
	}
	return padToWidth(render(indicatorStyle, indicator)+" "+render(lineStyle, body), width)
}

func rowText(row navigator.Row) string {
	switch row.Kind {
	case navigator.RowUp:
		return ".."
	case navigator.RowEntry:
		return row.Entry.Name
	default:
		return row.Text
	}
}

func (m *Model) viewHardware(header string) string {
	lines := []string{header, ""}
	if !m.scanned && !m.scanning {
		lines = append(lines, render(styles.Info, "Press s to scan hardware."))
	} else if m.scanning {
		lines = append(lines, render(styles.Info, "Scanning…"))
	} else if len(m.devices) == 0 {
		lines = append(lines, render(styles.Placeholder, "(No devices found)"))
	} else {
		rows := make([][]string, 0, len(m.devices))
		for _, d := range m.devices {
			rows = append(rows, []string{d.Name, d.Manufacturer, d.DeviceID})
		}
		tableLines := table.Render([]string{"Name", "Manufacturer", "Device ID"}, rows, nil)
		max := m.maxVisibleRows()
		if max > 0 && len(tableLines) > max {
			tableLines = tableLines[:max]
		}
		for _, line := range tableLines {
			lines = append(lines, truncateText(line, m.width))
		}
	}
	if m.showFooter {
		sortNote := fmt.Sprintf("sorted by %s", m.hwColumn)
		if m.hwReverse {
			sortNote += " (desc)"
		}
		footer := fmt.Sprintf("s scan  c sort column  r reverse  e export  esc files  [%s]", sortNote)
		lines = append(lines, "", render(styles.Footer, truncateText(footer, m.width)))
	}
	lines = append(lines, m.bottomStatus()...)
	return strings.Join(lines, "\n")
}

func (m *Model) viewMenu(header, title string, items []menuItem, cursor int) string {
	lines := []string{header, "", render(styles.Header, title)}
	for i, item := range items {
		lines = append(lines, renderLine(m.buildItemLine(item.label, i == cursor)))
	}
	if m.showFooter {
		lines = append(lines, "", render(styles.Footer, "↑/↓ move  enter select  esc files  ctrl+t view  ctrl+c quit"))
	}
	lines = append(lines, m.bottomStatus()...)
	return strings.Join(lines, "\n")
}

func (m *Model) viewTimeZones(header string) string {
	lines := []string{header, "", render(styles.Header, "Select Time Zone")}
	max := m.maxVisibleRows()
	zones := m.timezones
	start := 0
	if max > 0 && len(zones) > max {
		start = m.tzCursor - max/2
		if start < 0 {
			start = 0
		}
		if start+max > len(zones) {
			start = len(zones) - max
		}
		zones = zones[start : start+max]
	}
	for i, zone := range zones {
		lines = append(lines, renderLine(m.buildItemLine(zone, start+i == m.tzCursor)))
	}
	lines = append(lines, "", render(styles.Footer, "enter select  esc cancel"))
	return strings.Join(lines, "\n")
}

func (m *Model) buildItemLine(label string, selected bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	return styledLine{
		text:          indicator + " " + label,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// bottomBar renders the status line plus the filter prompt (or the pending
// confirmation question, which replaces the prompt while active).
func (m *Model) bottomBar() []string {
	lines := m.bottomStatus()
	if m.mode == ModeConfirm && m.confirm != nil {
		lines = append(lines, render(styles.Confirm, truncateText(m.confirm.message+" (y/n)", m.width)))
		return lines
	}
	lines = append(lines, m.filterPrompt())
	return lines
}

func (m *Model) bottomStatus() []string {
	if m.mode == ModeConfirm && m.confirm != nil && m.view != ViewFiles {
		return []string{"", render(styles.Confirm, truncateText(m.confirm.message+" (y/n)", m.width))}
	}
	if m.errMsg != "" {
		return []string{"", render(styles.Error, truncateText("Error: "+m.errMsg, m.width))}
	}
	if info := m.currentInfo(); info != "" {
		return []string{"", render(styles.Info, truncateText(info, m.width))}
	}
	return []string{"", ""}
}

func (m *Model) paneWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := (m.width - paneGap) / 2
	if w < 10 {
		w = 10
	}
	return w
}

// maxVisibleRows is the pane row count under the tabs header, pane title,
// optional footer, and the two-line bottom bar.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 20
	}
	used := 4 // tabs header + pane title + status + prompt
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func renderLine(line styledLine) string {
	runes := []rune(line.text)
	if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
		head := string(runes[:line.highlightFrom])
		tail := string(runes[line.highlightFrom:])
		return render(line.prefixStyle, head) + render(line.style, tail)
	}
	return render(line.style, line.text)
}

func padText(text string, width int) string {
	if pad := width - len([]rune(text)); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

// padToWidth pads or truncates a possibly styled string to an exact visible
// width so JoinHorizontal keeps both columns flush.
func padToWidth(text string, width int) string {
	w := lipgloss.Width(text)
	if w > width {
		return truncate.StringWithTail(text, uint(width-1), "…")
	}
	if w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	for _, p := range m.panes {
		m.syncViewport(p)
	}
	return nil
}
