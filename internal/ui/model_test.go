package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagetools/staging-console/internal/navigator"
	"github.com/stagetools/staging-console/internal/runner"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// newTestModel builds a model over two real temp directories so navigation
// and overwrite probing behave exactly as in production.
func newTestModel(t *testing.T) (*Model, *runner.Fake) {
	t.Helper()
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, src, "alpha.txt", "aaa")
	writeFile(t, src, "existing.txt", "new content")
	if err := os.Mkdir(filepath.Join(src, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(src, "sub"), "nested.txt", "n")
	writeFile(t, dst, "existing.txt", "old content")
	fake := &runner.Fake{}
	m := NewModel(Config{
		SourceRoot: src,
		DestRoot:   dst,
		Width:      100,
		Height:     30,
		ShowFooter: true,
		Lister:     navigator.DirLister{},
		Runner:     fake,
	})
	return m, fake
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func moveCursorTo(t *testing.T, m *Model, name string) {
	t.Helper()
	p := m.focusedPane()
	for i, row := range p.state.Rows {
		if row.Kind == navigator.RowEntry && row.Entry.Name == name {
			p.state.Cursor = i
			return
		}
	}
	t.Fatalf("no row named %q in pane %s", name, p.state.ID)
}

func TestTabSwitchesFocus(t *testing.T) {
	m, _ := newTestModel(t)
	if m.focusedPane().state.ID != "source" {
		t.Fatalf("initial focus = %s, want source", m.focusedPane().state.ID)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPane().state.ID != "dest" {
		t.Fatalf("focus after tab = %s, want dest", m.focusedPane().state.ID)
	}
}

func TestCtrlTCyclesViews(t *testing.T) {
	m, _ := newTestModel(t)
	want := []View{ViewHardware, ViewNetwork, ViewSystem, ViewFiles}
	for _, v := range want {
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
		if m.view != v {
			t.Fatalf("view = %v, want %v", m.view, v)
		}
	}
}

func TestEnterOpensDirectoryAndBackspaceReturns(t *testing.T) {
	m, _ := newTestModel(t)
	root := m.sourcePane().nav.CurrentPath()
	moveCursorTo(t, m, "sub")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.sourcePane().nav.CurrentPath(); filepath.Base(got) != "sub" {
		t.Fatalf("path after enter = %q, want sub", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.sourcePane().nav.CurrentPath(); got != root {
		t.Fatalf("path after backspace = %q, want %q", got, root)
	}
}

func TestEnterOnFileDoesNothing(t *testing.T) {
	m, _ := newTestModel(t)
	root := m.sourcePane().nav.CurrentPath()
	moveCursorTo(t, m, "alpha.txt")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.sourcePane().nav.CurrentPath(); got != root {
		t.Fatalf("path after enter on file = %q, want %q", got, root)
	}
}

func TestCopyWithoutConflictRunsImmediately(t *testing.T) {
	m, fake := newTestModel(t)
	moveCursorTo(t, m, "alpha.txt")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF5})
	if cmd == nil {
		t.Fatal("expected a transfer command")
	}
	msg := cmd()
	done, ok := msg.(transferDoneMsg)
	if !ok {
		t.Fatalf("command produced %T, want transferDoneMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("transfer failed: %v", done.err)
	}
	if len(fake.Commands) != 1 || !strings.HasPrefix(fake.Commands[0], "Copy-Item") {
		t.Fatalf("commands = %v, want one Copy-Item", fake.Commands)
	}
}

func TestOverwriteAsksForConfirmation(t *testing.T) {
	m, fake := newTestModel(t)
	moveCursorTo(t, m, "existing.txt")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF5})
	if cmd != nil {
		t.Fatal("transfer must not run before confirmation")
	}
	if m.mode != ModeConfirm || m.confirm == nil {
		t.Fatalf("mode = %v, want pending confirmation", m.mode)
	}
	if len(fake.Commands) != 0 {
		t.Fatalf("commands before confirmation = %v", fake.Commands)
	}
}

func TestDecliningOverwriteIssuesNoCommand(t *testing.T) {
	m, fake := newTestModel(t)
	srcRows := len(m.sourcePane().state.Rows)
	dstRows := len(m.destPane().state.Rows)
	moveCursorTo(t, m, "existing.txt")
	m.Update(tea.KeyMsg{Type: tea.KeyF6})
	_, cmd := m.Update(keyRunes("n"))
	if cmd != nil {
		t.Fatal("declining must issue no command")
	}
	if m.mode != ModeBrowse {
		t.Fatalf("mode after decline = %v, want browse", m.mode)
	}
	if len(fake.Commands) != 0 {
		t.Fatalf("commands after decline = %v", fake.Commands)
	}
	if len(m.sourcePane().state.Rows) != srcRows || len(m.destPane().state.Rows) != dstRows {
		t.Fatal("pane state changed after a declined transfer")
	}
}

func TestAcceptingOverwriteRunsCommand(t *testing.T) {
	m, fake := newTestModel(t)
	moveCursorTo(t, m, "existing.txt")
	m.Update(tea.KeyMsg{Type: tea.KeyF6})
	_, cmd := m.Update(keyRunes("y"))
	if cmd == nil {
		t.Fatal("expected the pending transfer command")
	}
	msg := cmd()
	if done, ok := msg.(transferDoneMsg); !ok || done.err != nil {
		t.Fatalf("transfer result = %#v", msg)
	}
	if len(fake.Commands) != 1 || !strings.HasPrefix(fake.Commands[0], "Move-Item") {
		t.Fatalf("commands = %v, want one Move-Item", fake.Commands)
	}
}

func TestTransferWithNoSelectionSetsError(t *testing.T) {
	m, fake := newTestModel(t)
	m.sourcePane().state.SetFilter("no-such-entry")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF5})
	if cmd != nil {
		t.Fatal("expected no command without a selection")
	}
	if m.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if len(fake.Commands) != 0 {
		t.Fatalf("commands = %v", fake.Commands)
	}
}

func TestTransferFailureKeepsCurrentPath(t *testing.T) {
	m, fake := newTestModel(t)
	fake.Outputs = []runner.Output{{Stderr: "Access to the path is denied."}}
	srcPath := m.sourcePane().nav.CurrentPath()
	dstPath := m.destPane().nav.CurrentPath()
	moveCursorTo(t, m, "alpha.txt")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF5})
	if cmd == nil {
		t.Fatal("expected a transfer command")
	}
	m.Update(cmd())
	if m.errMsg == "" {
		t.Fatal("expected the stderr to surface as an error")
	}
	if m.sourcePane().nav.CurrentPath() != srcPath || m.destPane().nav.CurrentPath() != dstPath {
		t.Fatal("a failed transfer must not move either pane")
	}
}

func TestSuccessfulMoveRefreshesBothPanes(t *testing.T) {
	m, _ := newTestModel(t)
	moveCursorTo(t, m, "alpha.txt")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF6})
	if cmd == nil {
		t.Fatal("expected a transfer command")
	}
	// Simulate the move before the done message lands, as the real runner
	// would have.
	src := m.sourcePane().nav.CurrentPath()
	dst := m.destPane().nav.CurrentPath()
	if err := os.Rename(filepath.Join(src, "alpha.txt"), filepath.Join(dst, "alpha.txt")); err != nil {
		t.Fatalf("rename: %v", err)
	}
	m.Update(cmd())
	for _, row := range m.sourcePane().state.Rows {
		if row.Kind == navigator.RowEntry && row.Entry.Name == "alpha.txt" {
			t.Fatal("moved entry still listed in source pane")
		}
	}
	found := false
	for _, row := range m.destPane().state.Rows {
		if row.Kind == navigator.RowEntry && row.Entry.Name == "alpha.txt" {
			found = true
		}
	}
	if !found {
		t.Fatal("moved entry missing from destination pane")
	}
}

func TestCtrlHTogglesHiddenInBothPanes(t *testing.T) {
	m, _ := newTestModel(t)
	writeFile(t, m.sourcePane().nav.CurrentPath(), ".hidden", "h")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	for _, row := range m.sourcePane().state.Rows {
		if row.Kind == navigator.RowEntry && row.Entry.Name == ".hidden" {
			t.Fatal("hidden file listed before toggle")
		}
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	found := false
	for _, row := range m.sourcePane().state.Rows {
		if row.Kind == navigator.RowEntry && row.Entry.Name == ".hidden" {
			found = true
		}
	}
	if !found {
		t.Fatal("hidden file missing after toggle")
	}
	if !m.destPane().nav.ShowHidden() {
		t.Fatal("toggle must apply to both panes")
	}
}

func TestEscClearsFilterBeforeQuitting(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyRunes("alp"))
	if m.focusedPane().state.Filter != "alp" {
		t.Fatalf("filter = %q", m.focusedPane().state.Filter)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Fatal("esc with an active filter must not quit")
	}
	if m.focusedPane().state.Filter != "" {
		t.Fatalf("filter after esc = %q", m.focusedPane().state.Filter)
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc with no filter should quit")
	}
}

func TestFilterNarrowsFocusedPaneOnly(t *testing.T) {
	m, _ := newTestModel(t)
	dstRows := len(m.destPane().state.Rows)
	m.Update(keyRunes("alpha"))
	entries := 0
	for _, row := range m.sourcePane().state.Rows {
		if row.Kind == navigator.RowEntry {
			entries++
		}
	}
	if entries != 1 {
		t.Fatalf("source entries under filter = %d, want 1", entries)
	}
	if len(m.destPane().state.Rows) != dstRows {
		t.Fatal("filter leaked into the unfocused pane")
	}
}
