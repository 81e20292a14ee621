// Package fsutil provides filesystem utilities used for resolving external
// commands.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"src.crush.sh/pkg/env"
)

// DontSearch determines whether the name of an external command should be
// taken literally and not searched.
func DontSearch(exe string) bool {
	return strings.ContainsRune(exe, filepath.Separator) ||
		strings.ContainsRune(exe, '/')
}

// IsExecutable returns whether the file at path is an executable file.
//
// This is determined by access permission on Unix, and by file name on Windows.
func IsExecutable(path string) bool {
	stat, err := os.Stat(path)
	if err != nil || stat.IsDir() {
		return false
	}
	return isExecutable(path, stat)
}

// Search looks for an executable called name in each of dirs, in order, and
// returns the full path of the first match.
//
// Names containing a path separator are never searched.
func Search(dirs []string, name string) (string, bool) {
	if name == "" || DontSearch(name) {
		return "", false
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, candidate := range candidates(filepath.Join(dir, name)) {
			if IsExecutable(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// SearchPaths returns the directories in $PATH.
func SearchPaths() []string {
	return filepath.SplitList(os.Getenv(env.PATH))
}
