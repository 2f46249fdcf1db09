package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagetools/staging-console/internal/backend"
	"github.com/stagetools/staging-console/internal/drives"
	"github.com/stagetools/staging-console/internal/logging"
	"github.com/stagetools/staging-console/internal/navigator"
	"github.com/stagetools/staging-console/internal/runner"
	"github.com/stagetools/staging-console/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SourceRoot string
	DestRoot   string
	Width      int
	Height     int
	ShowFooter bool
	ShowHidden bool
	Verbose    bool
	Watch      bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	source, dest := drives.PaneRoots(cfg.SourceRoot, cfg.DestRoot)

	var watcher *backend.Watcher
	if cfg.Watch {
		w, err := backend.NewWatcher(1500 * time.Millisecond)
		if err != nil {
			// Run without live refresh when the watcher cannot start.
			logging.Error(err)
		} else {
			watcher = w
			defer watcher.Stop()
		}
	}

	model := ui.NewModel(ui.Config{
		SourceRoot: source,
		DestRoot:   dest,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		ShowHidden: cfg.ShowHidden,
		Verbose:    cfg.Verbose,
		Lister:     navigator.DirLister{},
		Runner:     runner.NewShell(),
		Watcher:    watcher,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
