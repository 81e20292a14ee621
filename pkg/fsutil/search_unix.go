//go:build unix

package fsutil

import (
	"os"

	"golang.org/x/sys/unix"
)

func isExecutable(path string, stat os.FileInfo) bool {
	if stat.Mode()&0o111 == 0 {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}

func candidates(path string) []string {
	return []string{path}
}
