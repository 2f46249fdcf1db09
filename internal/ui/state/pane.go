// Package state holds per-pane display state: the visible rows, cursor,
// viewport offset, and filter text layered over one navigator's listing.
package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/stagetools/staging-console/internal/navigator"
)

// Pane tracks the cursor, viewport, and filter for one directory pane.
type Pane struct {
	ID             string
	Rows           []navigator.Row
	Full           []navigator.Row
	Filter         string
	Cursor         int
	ViewportOffset int
}

// NewPane constructs pane state with the given identifier.
func NewPane(id string) *Pane {
	return &Pane{ID: id}
}

// SetRows replaces the pane's rows with a fresh listing, re-applying the
// current filter and clamping the cursor.
func (p *Pane) SetRows(rows []navigator.Row) {
	p.Full = make([]navigator.Row, len(rows))
	copy(p.Full, rows)
	p.applyFilter()
	p.clampCursor()
}

// SetFilter replaces the filter text. Up-rows and placeholders are never
// filtered out; only real entries have to match.
func (p *Pane) SetFilter(filter string) {
	p.Filter = filter
	p.applyFilter()
	p.Cursor = 0
	p.ViewportOffset = 0
}

// AppendFilter adds text to the filter.
func (p *Pane) AppendFilter(text string) {
	p.SetFilter(p.Filter + text)
}

// BackspaceFilter removes the final filter rune. It reports whether anything
// changed.
func (p *Pane) BackspaceFilter() bool {
	if p.Filter == "" {
		return false
	}
	runes := []rune(p.Filter)
	p.SetFilter(string(runes[:len(runes)-1]))
	return true
}

// ClearFilter resets the filter. It reports whether anything changed.
func (p *Pane) ClearFilter() bool {
	if p.Filter == "" {
		return false
	}
	p.SetFilter("")
	return true
}

func (p *Pane) applyFilter() {
	filter := strings.TrimSpace(p.Filter)
	if filter == "" {
		p.Rows = p.Full
		return
	}
	rows := make([]navigator.Row, 0, len(p.Full))
	for _, row := range p.Full {
		if row.Kind != navigator.RowEntry || fuzzy.MatchFold(filter, row.Entry.Name) {
			rows = append(rows, row)
		}
	}
	p.Rows = rows
}

// Current returns the row under the cursor.
func (p *Pane) Current() (navigator.Row, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Rows) {
		return navigator.Row{}, false
	}
	return p.Rows[p.Cursor], true
}

// SelectedPath returns the path of the selected real entry, or "" when the
// cursor sits on a placeholder or the ".." row.
func (p *Pane) SelectedPath() string {
	row, ok := p.Current()
	if !ok || row.Kind != navigator.RowEntry {
		return ""
	}
	return row.Entry.Path
}

// MoveCursorUp moves the cursor one row up, wrapping to the bottom.
func (p *Pane) MoveCursorUp() {
	if n := len(p.Rows); n > 0 {
		if p.Cursor > 0 {
			p.Cursor--
		} else {
			p.Cursor = n - 1
		}
	}
}

// MoveCursorDown moves the cursor one row down, wrapping to the top.
func (p *Pane) MoveCursorDown() {
	if n := len(p.Rows); n > 0 {
		if p.Cursor < n-1 {
			p.Cursor++
		} else {
			p.Cursor = 0
		}
	}
}

// MoveCursorPage moves by up to page rows in either direction without
// wrapping.
func (p *Pane) MoveCursorPage(delta int) {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		return
	}
	p.Cursor += delta
	p.clampCursor()
}

// MoveCursorHome jumps to the first row.
func (p *Pane) MoveCursorHome() {
	p.Cursor = 0
}

// MoveCursorEnd jumps to the last row.
func (p *Pane) MoveCursorEnd() {
	if len(p.Rows) > 0 {
		p.Cursor = len(p.Rows) - 1
	} else {
		p.Cursor = 0
	}
}

func (p *Pane) clampCursor() {
	if p.Cursor >= len(p.Rows) {
		p.Cursor = len(p.Rows) - 1
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays inside
// a window of maxVisible rows.
func (p *Pane) EnsureCursorVisible(maxVisible int) {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	p.clampCursor()
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if upper := p.ViewportOffset + maxVisible - 1; p.Cursor > upper {
		p.ViewportOffset = p.Cursor - maxVisible + 1
		if p.ViewportOffset > maxOffset {
			p.ViewportOffset = maxOffset
		}
		if p.ViewportOffset < 0 {
			p.ViewportOffset = 0
		}
	}
}

// VisibleRows returns the slice of rows inside the viewport along with the
// index of the first one.
func (p *Pane) VisibleRows(maxVisible int) ([]navigator.Row, int) {
	if maxVisible <= 0 || len(p.Rows) <= maxVisible {
		return p.Rows, 0
	}
	p.EnsureCursorVisible(maxVisible)
	start := p.ViewportOffset
	end := start + maxVisible
	if end > len(p.Rows) {
		end = len(p.Rows)
	}
	return p.Rows[start:end], start
}
