package state

import (
	"testing"

	"github.com/stagetools/staging-console/internal/navigator"
)

func entryRow(name string) navigator.Row {
	return navigator.Row{
		Kind:  navigator.RowEntry,
		Entry: navigator.Entry{Name: name, Path: `C:\src\` + name, Kind: navigator.KindFile},
		Text:  name,
	}
}

func sampleRows() []navigator.Row {
	return []navigator.Row{
		{Kind: navigator.RowUp, Text: ".."},
		entryRow("alpha.txt"),
		entryRow("beta.txt"),
		entryRow("gamma.log"),
	}
}

func TestFilterKeepsUpRow(t *testing.T) {
	p := NewPane("source")
	p.SetRows(sampleRows())
	p.SetFilter("txt")

	if len(p.Rows) != 3 {
		t.Fatalf("filtered rows = %d, want 3", len(p.Rows))
	}
	if p.Rows[0].Kind != navigator.RowUp {
		t.Fatalf("first row kind = %v, want up row", p.Rows[0].Kind)
	}
}

func TestFilterIsFuzzyAndCaseInsensitive(t *testing.T) {
	p := NewPane("source")
	p.SetRows(sampleRows())
	p.SetFilter("GML")

	var names []string
	for _, row := range p.Rows {
		if row.Kind == navigator.RowEntry {
			names = append(names, row.Entry.Name)
		}
	}
	if len(names) != 1 || names[0] != "gamma.log" {
		t.Fatalf("matched entries = %v, want [gamma.log]", names)
	}
}

func TestFilterNeverHidesPlaceholders(t *testing.T) {
	p := NewPane("source")
	p.SetRows([]navigator.Row{{Kind: navigator.RowPlaceholder, Text: "Access Denied"}})
	p.SetFilter("zzz")

	if len(p.Rows) != 1 || p.Rows[0].Text != "Access Denied" {
		t.Fatalf("rows = %v, want the placeholder kept", p.Rows)
	}
}

func TestBackspaceAndClearFilter(t *testing.T) {
	p := NewPane("source")
	p.SetRows(sampleRows())
	p.SetFilter("ab")

	if !p.BackspaceFilter() {
		t.Fatal("BackspaceFilter returned false with filter set")
	}
	if p.Filter != "a" {
		t.Fatalf("filter = %q, want %q", p.Filter, "a")
	}
	if !p.ClearFilter() {
		t.Fatal("ClearFilter returned false with filter set")
	}
	if p.ClearFilter() {
		t.Fatal("ClearFilter returned true with empty filter")
	}
	if len(p.Rows) != 4 {
		t.Fatalf("rows after clear = %d, want 4", len(p.Rows))
	}
}

func TestCursorWraps(t *testing.T) {
	p := NewPane("source")
	p.SetRows(sampleRows())

	p.MoveCursorUp()
	if p.Cursor != 3 {
		t.Fatalf("cursor after wrap up = %d, want 3", p.Cursor)
	}
	p.MoveCursorDown()
	if p.Cursor != 0 {
		t.Fatalf("cursor after wrap down = %d, want 0", p.Cursor)
	}
}

func TestPageMovementClamps(t *testing.T) {
	p := NewPane("source")
	p.SetRows(sampleRows())

	p.MoveCursorPage(10)
	if p.Cursor != 3 {
		t.Fatalf("cursor after page down = %d, want 3", p.Cursor)
	}
	p.MoveCursorPage(-10)
	if p.Cursor != 0 {
		t.Fatalf("cursor after page up = %d, want 0", p.Cursor)
	}
}

func TestSetRowsClampsCursor(t *testing.T) {
	p := NewPane("source")
	p.SetRows(sampleRows())
	p.MoveCursorEnd()

	p.SetRows(sampleRows()[:2])
	if p.Cursor != 1 {
		t.Fatalf("cursor after shrink = %d, want 1", p.Cursor)
	}
}

func TestSelectedPathSkipsSpecialRows(t *testing.T) {
	p := NewPane("source")
	p.SetRows(sampleRows())

	if got := p.SelectedPath(); got != "" {
		t.Fatalf("path on up row = %q, want empty", got)
	}
	p.MoveCursorDown()
	if got := p.SelectedPath(); got != `C:\src\alpha.txt` {
		t.Fatalf("path = %q", got)
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	rows := []navigator.Row{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		rows = append(rows, entryRow(name))
	}
	p := NewPane("source")
	p.SetRows(rows)

	p.MoveCursorEnd()
	visible, start := p.VisibleRows(3)
	if start != 3 || len(visible) != 3 {
		t.Fatalf("window = (%d, %d rows), want start 3 with 3 rows", start, len(visible))
	}
	if visible[2].Entry.Name != "f" {
		t.Fatalf("last visible = %q, want f", visible[2].Entry.Name)
	}

	p.MoveCursorHome()
	visible, start = p.VisibleRows(3)
	if start != 0 || visible[0].Entry.Name != "a" {
		t.Fatalf("window after home = (%d, first %q)", start, visible[0].Entry.Name)
	}
}
