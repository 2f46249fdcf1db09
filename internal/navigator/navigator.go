// Package navigator owns the state of one directory pane: the directory
// currently on screen, the back-navigation history, and the rows produced by
// the most recent listing. Two independent instances exist, one per pane; they
// never share mutable data.
package navigator

import (
	"path/filepath"
	"sort"
	"strings"
)

// Kind distinguishes directories from files in a listing.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// Entry is one real filesystem child produced by a listing. Entries are
// rebuilt from scratch on every navigation and never cached across listings.
type Entry struct {
	Name string
	Path string
	Kind Kind
	Size int64
}

// RowKind classifies display rows. Only RowEntry rows carry a real entry;
// RowUp is the synthetic ".." row and RowPlaceholder stands in for an error
// or empty-directory condition.
type RowKind int

const (
	RowEntry RowKind = iota
	RowUp
	RowPlaceholder
)

// Row is a single display row of a pane.
type Row struct {
	Kind  RowKind
	Entry Entry
	Text  string
}

// Navigator tracks navigation state for one pane. It is not safe for
// concurrent use; all calls happen on the UI event loop.
type Navigator struct {
	lister      Lister
	showHidden  bool
	currentPath string
	history     []string
	populated   map[string]struct{}
	rows        []Row
}

// New returns a Navigator backed by the given lister. The navigator is
// unusable until PopulateRoot establishes the pane root.
func New(lister Lister) *Navigator {
	return &Navigator{
		lister:    lister,
		populated: make(map[string]struct{}),
	}
}

// PopulateRoot resets the pane to a new root: history becomes [path] and the
// root's children are listed. Listing failures surface as a placeholder row;
// the attempted path still becomes the current path so a later retry re-lists
// the same directory.
func (n *Navigator) PopulateRoot(path string) {
	n.history = []string{path}
	for k := range n.populated {
		delete(n.populated, k)
	}
	n.relist(path)
}

// NavigateTo performs a forward navigation into path. Paths that are not
// existing directories are ignored. Navigating to the current path re-lists
// it without growing the history.
func (n *Navigator) NavigateTo(path string) {
	if len(n.history) == 0 {
		return
	}
	if !n.lister.IsDir(path) {
		return
	}
	if path != n.currentPath {
		n.history = append(n.history, path)
	}
	n.relist(path)
}

// Back pops the history and re-lists the previous directory. The pane root is
// never popped; at the root this is a no-op.
func (n *Navigator) Back() {
	if len(n.history) <= 1 {
		return
	}
	n.history = n.history[:len(n.history)-1]
	n.relist(n.history[len(n.history)-1])
}

// Refresh re-lists the current directory without touching the history.
func (n *Navigator) Refresh() {
	if n.currentPath == "" {
		return
	}
	n.relist(n.currentPath)
}

// SetShowHidden controls whether dot-prefixed entries are listed. The caller
// is expected to Refresh afterwards.
func (n *Navigator) SetShowHidden(show bool) {
	n.showHidden = show
}

// ShowHidden reports whether dot-prefixed entries are included.
func (n *Navigator) ShowHidden() bool {
	return n.showHidden
}

// CurrentPath returns the directory currently displayed, or "" before the
// first PopulateRoot.
func (n *Navigator) CurrentPath() string {
	return n.currentPath
}

// Root returns the pane root, or "" before the first PopulateRoot.
func (n *Navigator) Root() string {
	if len(n.history) == 0 {
		return ""
	}
	return n.history[0]
}

// History returns a copy of the visited-path stack, oldest first.
func (n *Navigator) History() []string {
	out := make([]string, len(n.history))
	copy(out, n.history)
	return out
}

// Rows returns the rows of the most recent listing.
func (n *Navigator) Rows() []Row {
	return n.rows
}

// IsPopulated reports whether path has had a successful listing since the
// last PopulateRoot.
func (n *Navigator) IsPopulated(path string) bool {
	_, ok := n.populated[path]
	return ok
}

func (n *Navigator) relist(path string) {
	rows := make([]Row, 0, 16)
	if path != n.history[0] {
		rows = append(rows, Row{
			Kind:  RowUp,
			Entry: Entry{Name: "..", Path: filepath.Dir(path), Kind: KindDirectory},
		})
	}
	n.currentPath = path

	entries, err := n.lister.List(path)
	if err != nil {
		n.rows = append(rows, placeholderFor(err))
		return
	}

	visible := entries[:0]
	for _, e := range entries {
		if !n.showHidden && strings.HasPrefix(e.Name, ".") {
			continue
		}
		visible = append(visible, e)
	}
	sortEntries(visible)

	if len(visible) == 0 {
		rows = append(rows, Row{Kind: RowPlaceholder, Text: "(Empty)"})
	}
	for _, e := range visible {
		rows = append(rows, Row{Kind: RowEntry, Entry: e})
	}
	n.populated[path] = struct{}{}
	n.rows = rows
}

// sortEntries orders directories before files, then case-insensitively by
// name. Ties between names differing only in case fall back to the raw name
// so the order is deterministic regardless of on-disk order.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.Kind == KindFile) != (b.Kind == KindFile) {
			return a.Kind != KindFile
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.Name < b.Name
	})
}
