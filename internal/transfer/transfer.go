// Package transfer resolves and executes the single copy or move a user can
// trigger between the two panes. The byte work is delegated to the external
// command runner; no partial-failure recovery is attempted.
package transfer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stagetools/staging-console/internal/runner"
)

var (
	// ErrNoSelection means no source row was selected.
	ErrNoSelection = errors.New("no file selected")
	// ErrNoDestination means the destination pane has no current directory.
	ErrNoDestination = errors.New("no destination directory selected")
)

// CommandError carries the stderr of a failed copy or move command.
type CommandError struct {
	Stderr string
}

func (e *CommandError) Error() string {
	return "command failed: " + strings.TrimSpace(e.Stderr)
}

// Request is a fully resolved transfer. Overwrite marks that the destination
// path already exists; executing such a request requires explicit user
// confirmation first.
type Request struct {
	SourcePath string
	DestDir    string
	DestPath   string
	Move       bool
	Overwrite  bool
}

// Verb names the operation for status messages.
func (r Request) Verb() string {
	if r.Move {
		return "move"
	}
	return "copy"
}

// Filename returns the basename being transferred.
func (r Request) Filename() string {
	return filepath.Base(r.SourcePath)
}

// Plan resolves the destination path for a transfer and checks for an
// existing file at the destination. It never touches the filesystem beyond
// that existence probe.
func Plan(sourcePath, destDir string, move bool) (Request, error) {
	if sourcePath == "" {
		return Request{}, ErrNoSelection
	}
	if destDir == "" {
		return Request{}, ErrNoDestination
	}
	req := Request{
		SourcePath: sourcePath,
		DestDir:    destDir,
		DestPath:   filepath.Join(destDir, filepath.Base(sourcePath)),
		Move:       move,
	}
	if _, err := os.Stat(req.DestPath); err == nil {
		req.Overwrite = true
	}
	return req, nil
}

// Execute hands the transfer to the runner. A non-empty stderr is reported as
// a CommandError; on any failure both panes are left for the caller to keep
// unchanged.
func Execute(r runner.Runner, req Request) error {
	out, err := r.Run(Command(req))
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Verb(), req.Filename(), err)
	}
	if out.Failed() {
		return &CommandError{Stderr: out.Stderr}
	}
	return nil
}

// Command builds the shell command for a transfer.
func Command(req Request) string {
	verb := "Copy-Item"
	if req.Move {
		verb = "Move-Item"
	}
	return fmt.Sprintf("%s -Path '%s' -Destination '%s' -Force",
		verb, quote(req.SourcePath), quote(req.DestPath))
}

// quote doubles single quotes so paths survive PowerShell single-quoting.
func quote(path string) string {
	return strings.ReplaceAll(path, "'", "''")
}
