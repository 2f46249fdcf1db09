// Package ui implements the Bubble Tea model for the staging console.
//
// The model exposes four top-level views: the dual-pane file browser,
// the hardware inventory table, and the network and system action menus.
// Modal states (confirmation prompts, text forms, the time-zone picker)
// capture key input until resolved; every mutating command goes through
// an explicit confirmation first, and declining issues no command.
//
// All external effects run through injected collaborators (the command
// Runner, the directory Lister, the filesystem Watcher) so the whole
// model is testable with fakes.
package ui
