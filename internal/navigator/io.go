package navigator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Lister enumerates the immediate children of a directory. Implementations
// must surface permission errors in a way errors.Is can match against
// fs.ErrPermission so the navigator can pick its placeholder message.
type Lister interface {
	List(path string) ([]Entry, error)
	IsDir(path string) bool
}

// DirLister lists directories straight off the local filesystem.
type DirLister struct{}

func (DirLister) List(path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		e := Entry{
			Name: d.Name(),
			Path: filepath.Join(path, d.Name()),
			Kind: KindFile,
		}
		if d.IsDir() {
			e.Kind = KindDirectory
		} else if info, err := d.Info(); err == nil {
			e.Size = info.Size()
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (DirLister) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func placeholderFor(err error) Row {
	if errors.Is(err, fs.ErrPermission) {
		return Row{Kind: RowPlaceholder, Text: "Access Denied"}
	}
	return Row{Kind: RowPlaceholder, Text: "Error: " + err.Error()}
}
