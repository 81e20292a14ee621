package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"src.crush.sh/pkg/env"
)

func TestScaled(t *testing.T) {
	tests := []struct {
		scale string
		want  time.Duration
	}{
		{"", time.Second},
		{"2", 2 * time.Second},
		{"0.5", time.Second / 2},
		{"bad", time.Second},
		{"-1", time.Second},
	}
	for _, test := range tests {
		Setenv(t, env.CRUSH_TEST_TIME_SCALE, test.scale)
		if got := Scaled(time.Second); got != test.want {
			t.Errorf("with scale %q, Scaled(1s) -> %v, want %v", test.scale, got, test.want)
		}
	}
}

func TestSetenv_Unsetenv(t *testing.T) {
	const name = "CRUSH_TESTUTIL_VAR"
	os.Setenv(name, "old")
	defer os.Unsetenv(name)

	t.Run("set", func(t *testing.T) {
		if v := Setenv(t, name, "new"); v != "new" {
			t.Errorf("Setenv returned %q, want %q", v, "new")
		}
		if v := os.Getenv(name); v != "new" {
			t.Errorf("value is %q during test, want %q", v, "new")
		}
	})
	if v := os.Getenv(name); v != "old" {
		t.Errorf("value is %q after cleanup, want %q", v, "old")
	}

	t.Run("unset", func(t *testing.T) {
		Unsetenv(t, name)
		if _, ok := os.LookupEnv(name); ok {
			t.Errorf("variable still set during test")
		}
	})
	if v := os.Getenv(name); v != "old" {
		t.Errorf("value is %q after cleanup, want %q", v, "old")
	}
}

func TestMakeExecutable(t *testing.T) {
	name := filepath.Join(t.TempDir(), "a", "b", "exe")
	MakeExecutable(t, name, "content")

	stat, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if stat.Mode().Perm() != 0o700 {
		t.Errorf("mode is %v, want 0700", stat.Mode().Perm())
	}
}
