package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"src.crush.sh/pkg/env"
)

func isExecutable(path string, stat os.FileInfo) bool {
	return isExecutableExt(filepath.Ext(path))
}

// Returns the extensions considered executable. It honors PATHEXT but defaults
// to ".com", ".exe", ".bat" and ".cmd" if that env var isn't set.
func executableExts() []string {
	pathext := os.Getenv(env.PATHEXT)
	if pathext == "" {
		return []string{".com", ".exe", ".bat", ".cmd"}
	}
	var exts []string
	for _, e := range filepath.SplitList(strings.ToLower(pathext)) {
		if e == "" {
			continue
		}
		if e[0] != '.' {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}

func isExecutableExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range executableExts() {
		if e == ext {
			return true
		}
	}
	return false
}

// A name without an executable extension also matches name+ext for each
// executable extension.
func candidates(path string) []string {
	if isExecutableExt(filepath.Ext(path)) {
		return []string{path}
	}
	exts := executableExts()
	paths := make([]string, len(exts))
	for i, ext := range exts {
		paths[i] = path + ext
	}
	return paths
}
