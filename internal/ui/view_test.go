package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsBothPaneRoots(t *testing.T) {
	m, _ := newTestModel(t)
	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Source:") || !strings.Contains(plain, "Destination:") {
		t.Fatalf("view missing pane titles:\n%s", plain)
	}
	for _, name := range []string{"alpha.txt", "existing.txt", "sub"} {
		if !strings.Contains(plain, name) {
			t.Fatalf("view missing entry %q:\n%s", name, plain)
		}
	}
}

func TestViewShowsConfirmPrompt(t *testing.T) {
	m, _ := newTestModel(t)
	moveCursorTo(t, m, "existing.txt")
	m.Update(tea.KeyMsg{Type: tea.KeyF5})
	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Overwrite?") || !strings.Contains(plain, "(y/n)") {
		t.Fatalf("view missing confirmation prompt:\n%s", plain)
	}
}

func TestViewShowsErrorOnStatusLine(t *testing.T) {
	m, _ := newTestModel(t)
	m.errMsg = "something broke"
	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Error: something broke") {
		t.Fatalf("view missing error line:\n%s", plain)
	}
}

func TestViewTabsMarkActiveView(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	plain := ansi.Strip(m.View())
	for _, label := range []string{"Files", "Hardware", "Network", "System"} {
		if !strings.Contains(plain, label) {
			t.Fatalf("tabs missing %q:\n%s", label, plain)
		}
	}
	if !strings.Contains(plain, "Press s to scan hardware.") {
		t.Fatalf("hardware view missing scan hint:\n%s", plain)
	}
}

func TestViewMenuListsSystemActions(t *testing.T) {
	m, _ := newTestModel(t)
	m.view = ViewSystem
	plain := ansi.Strip(m.View())
	for _, label := range []string{"Rename Computer", "Set Time Zone", "Restart Computer"} {
		if !strings.Contains(plain, label) {
			t.Fatalf("system menu missing %q:\n%s", label, plain)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("truncated = %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("untouched = %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("zero width = %q", got)
	}
}
