package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagetools/staging-console/internal/backend"
	"github.com/stagetools/staging-console/internal/hardware"
	"github.com/stagetools/staging-console/internal/navigator"
	"github.com/stagetools/staging-console/internal/runner"
	"github.com/stagetools/staging-console/internal/theme"
	uistate "github.com/stagetools/staging-console/internal/ui/state"
)

// View identifies a top-level screen.
type View int

const (
	ViewFiles View = iota
	ViewHardware
	ViewNetwork
	ViewSystem
)

func (v View) String() string {
	switch v {
	case ViewFiles:
		return "Files"
	case ViewHardware:
		return "Hardware"
	case ViewNetwork:
		return "Network"
	case ViewSystem:
		return "System"
	default:
		return "Unknown"
	}
}

var viewOrder = []View{ViewFiles, ViewHardware, ViewNetwork, ViewSystem}

// Mode distinguishes the browse state from modal overlays.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeConfirm
	ModeStaticIPForm
	ModeRenameForm
	ModeTimeZones
)

const (
	paneSource = 0
	paneDest   = 1
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// pane couples one navigator with its display state.
type pane struct {
	nav   *navigator.Navigator
	state *uistate.Pane
}

func newPane(id string, lister navigator.Lister, root string, showHidden bool) *pane {
	nav := navigator.New(lister)
	nav.SetShowHidden(showHidden)
	nav.PopulateRoot(root)
	p := &pane{nav: nav, state: uistate.NewPane(id)}
	p.state.SetRows(nav.Rows())
	return p
}

func (p *pane) sync() {
	p.state.SetRows(p.nav.Rows())
}

// Config carries everything the model needs; collaborators are injected so
// tests can substitute fakes.
type Config struct {
	SourceRoot string
	DestRoot   string
	Width      int
	Height     int
	ShowFooter bool
	ShowHidden bool
	Verbose    bool
	Lister     navigator.Lister
	Runner     runner.Runner
	Watcher    *backend.Watcher
}

// Model implements the Bubble Tea model for the staging console.
type Model struct {
	panes [2]*pane
	focus int
	view  View
	mode  Mode

	runner  runner.Runner
	backend *backend.Watcher

	confirm    *confirmState
	ipForm     *staticIPForm
	renameForm *renameForm

	devices   []hardware.Device
	scanned   bool
	scanning  bool
	hwColumn  hardware.Column
	hwReverse bool

	netCursor int
	sysCursor int

	timezones []string
	tzCursor  int

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises both panes and the handler registry.
func NewModel(cfg Config) *Model {
	m := &Model{
		runner:     cfg.Runner,
		backend:    cfg.Watcher,
		showFooter: cfg.ShowFooter,
		verbose:    cfg.Verbose,
		view:       ViewFiles,
		mode:       ModeBrowse,
	}
	m.panes[paneSource] = newPane("source", cfg.Lister, cfg.SourceRoot, cfg.ShowHidden)
	m.panes[paneDest] = newPane("dest", cfg.Lister, cfg.DestRoot, cfg.ShowHidden)
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.updateWatcherPaths()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	// Async results and watcher events bypass modals so the resubscribe
	// chain never stalls behind an open form.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		if handler := m.handlerFor(msg); handler != nil {
			if cmd := handler(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, m.finishUpdate(cmds)
		}
	}
	if handled, cmd := m.handleActiveModal(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveModal(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeConfirm:
		return m.handleConfirm(msg)
	case ModeStaticIPForm:
		return m.handleStaticIPForm(msg)
	case ModeRenameForm:
		return m.handleRenameForm(msg)
	case ModeTimeZones:
		return m.handleTimeZoneList(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(transferDoneMsg{}):   m.handleTransferDoneMsg,
		reflect.TypeOf(scanDoneMsg{}):       m.handleScanDoneMsg,
		reflect.TypeOf(exportDoneMsg{}):     m.handleExportDoneMsg,
		reflect.TypeOf(timezonesMsg{}):      m.handleTimezonesMsg,
		reflect.TypeOf(actionDoneMsg{}):     m.handleActionDoneMsg,
		reflect.TypeOf(activationMsg{}):     m.handleActivationMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) focusedPane() *pane {
	return m.panes[m.focus]
}

func (m *Model) otherPane() *pane {
	return m.panes[1-m.focus]
}

func (m *Model) sourcePane() *pane { return m.panes[paneSource] }
func (m *Model) destPane() *pane   { return m.panes[paneDest] }

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
