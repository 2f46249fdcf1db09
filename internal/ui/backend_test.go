package ui

import (
	"errors"
	"testing"

	"github.com/stagetools/staging-console/internal/backend"
	"github.com/stagetools/staging-console/internal/navigator"
)

func TestBackendEventRefreshesMatchingPane(t *testing.T) {
	m, _ := newTestModel(t)
	src := m.sourcePane().nav.CurrentPath()
	writeFile(t, src, "late.txt", "x")

	m.applyBackendEvent(backend.Event{Path: "/somewhere/else"})
	for _, row := range m.sourcePane().state.Rows {
		if row.Kind == navigator.RowEntry && row.Entry.Name == "late.txt" {
			t.Fatal("pane refreshed on a non-matching event")
		}
	}

	m.applyBackendEvent(backend.Event{Path: src})
	found := false
	for _, row := range m.sourcePane().state.Rows {
		if row.Kind == navigator.RowEntry && row.Entry.Name == "late.txt" {
			found = true
		}
	}
	if !found {
		t.Fatal("pane not refreshed after a matching event")
	}
}

func TestBackendEventErrorSurfacesOnStatusLine(t *testing.T) {
	m, _ := newTestModel(t)
	m.applyBackendEvent(backend.Event{Err: errors.New("watch failed")})
	if m.errMsg == "" {
		t.Fatal("watcher error not surfaced")
	}
}
