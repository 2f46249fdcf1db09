// Package drives enumerates the filesystem roots a pane can be anchored to.
package drives

import (
	"os"
	"runtime"
)

// Detect returns the available pane roots. On Windows these are the ready
// drive letters; elsewhere the filesystem root.
func Detect() []string {
	if runtime.GOOS == "windows" {
		return detectLetters()
	}
	return []string{"/"}
}

func detectLetters() []string {
	roots := []string{}
	for letter := 'A'; letter <= 'Z'; letter++ {
		root := string(letter) + `:\`
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			roots = append(roots, string(letter)+":")
		}
	}
	return roots
}

// PaneRoots resolves the source and destination roots, preferring explicit
// configuration and falling back to detected drives. The destination defaults
// to the second drive when one exists.
func PaneRoots(source, dest string) (string, string) {
	detected := Detect()
	if source == "" && len(detected) > 0 {
		source = detected[0]
	}
	if dest == "" {
		switch {
		case len(detected) > 1:
			dest = detected[1]
		case len(detected) > 0:
			dest = detected[0]
		}
	}
	return source, dest
}
