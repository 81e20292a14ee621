// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"path/filepath"
)

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// TB is the subset of [testing.TB] used by helpers that can fail.
type TB interface {
	Cleanuper
	Helper()
	Fatalf(format string, args ...any)
}

// WriteFile writes data to a file with permission 0600, after creating all
// ancestor directories that don't exist.
func WriteFile(t TB, name, data string) {
	t.Helper()
	writeFile(t, name, data, 0o600)
}

// MakeExecutable writes data to a file with permission 0700, after creating
// all ancestor directories that don't exist.
func MakeExecutable(t TB, name, data string) {
	t.Helper()
	writeFile(t, name, data, 0o700)
}

func writeFile(t TB, name, data string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(name), 0o700); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(name), err)
	}
	if err := os.WriteFile(name, []byte(data), perm); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
