package events

import "github.com/stagetools/staging-console/internal/logging"

type NavigatorTracer struct{}

type PaneTracer struct{}

var (
	Navigator = NavigatorTracer{}
	Pane      = PaneTracer{}
)

func (NavigatorTracer) PopulateRoot(pane, path string) {
	logging.Trace("navigator.populate-root", map[string]interface{}{"pane": pane, "path": path})
}

func (NavigatorTracer) Navigate(pane, path string) {
	logging.Trace("navigator.navigate", map[string]interface{}{"pane": pane, "path": path})
}

func (NavigatorTracer) Back(pane, path string) {
	logging.Trace("navigator.back", map[string]interface{}{"pane": pane, "path": path})
}

func (NavigatorTracer) Refresh(pane, path string) {
	logging.Trace("navigator.refresh", map[string]interface{}{"pane": pane, "path": path})
}

func (PaneTracer) Cursor(pane string, cursor int) {
	logging.Trace("pane.cursor", map[string]interface{}{"pane": pane, "cursor": cursor})
}

func (PaneTracer) Filter(pane, filter string) {
	logging.Trace("pane.filter", map[string]interface{}{"pane": pane, "filter": filter})
}

func (PaneTracer) Focus(pane string) {
	logging.Trace("pane.focus", map[string]interface{}{"pane": pane})
}
