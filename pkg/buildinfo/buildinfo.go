// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.crush.sh/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"src.crush.sh/pkg/prog"
)

// VersionBase is the version of crush. On development commits, it identifies
// the next release.
const VersionBase = "0.1.0"

// VCSOverride may be set during compilation to "time-commit" (e.g.
// "20220401235958-123456789012") for use in the version of development
// builds, instead of the VCS data embedded by the Go toolchain.
var VCSOverride string

// Type contains all the build information fields.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:   devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo),
	GoVersion: runtime.Version(),
}

func devVersion(next, vcsOverride string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	var revision, modified string
	var t time.Time
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		case "vcs.time":
			var err error
			t, err = time.Parse(time.RFC3339, setting.Value)
			if err != nil {
				return fallback
			}
		}
	}
	if len(revision) < 12 || t.IsZero() {
		return fallback
	}
	v := fmt.Sprintf("%s-dev.0.%s-%s", next, t.UTC().Format("20060102150405"), revision[:12])
	if modified == "true" {
		v += "-dirty"
	}
	return v
}

// Program is the buildinfo subprogram. It runs when -version or -buildinfo is
// given.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			return writeJSON(fds[1], Value)
		}
		fmt.Fprintln(fds[1], "Version:", Value.Version)
		fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
	case f.Version:
		if f.JSON {
			return writeJSON(fds[1], Value.Version)
		}
		fmt.Fprintln(fds[1], Value.Version)
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func writeJSON(f *os.File, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(f, "%s\n", data)
	return err
}
