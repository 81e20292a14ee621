package shell_test

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.crush.sh/pkg/env"
	"src.crush.sh/pkg/prog/progtest"
	"src.crush.sh/pkg/shell"
	"src.crush.sh/pkg/store"
	"src.crush.sh/pkg/testutil"
)

var (
	Test      = progtest.Test
	ThatCrush = progtest.ThatCrush
)

// Sets up a home directory and writes a configuration file with the given
// search path and a history database in the home directory. It returns the
// paths of the configuration file and the database.
func setup(t *testing.T, searchPath ...string) (string, string) {
	home := t.TempDir()
	testutil.Setenv(t, env.HOME, home)
	testutil.Setenv(t, env.CRUSH_SESSION, "test-session")
	testutil.Unsetenv(t, env.CRUSH_CONFIG)

	db := filepath.Join(home, "state", "db")
	var sb strings.Builder
	sb.WriteString("history: " + strconv.Quote(db) + "\n")
	if len(searchPath) == 0 {
		sb.WriteString("search_path: []\n")
	} else {
		sb.WriteString("search_path:\n")
		for _, dir := range searchPath {
			sb.WriteString("  - " + strconv.Quote(dir) + "\n")
		}
	}
	rc := filepath.Join(home, "rc.yaml")
	testutil.WriteFile(t, rc, sb.String())
	return rc, db
}

func TestProgram_NoCommand(t *testing.T) {
	setup(t)
	Test(t, shell.Program{},
		ThatCrush().ExitsWith(2).WritesStderrContaining("no command given\nUsage:"),
	)
}

func TestProgram_Builtins(t *testing.T) {
	rc, _ := setup(t)
	Test(t, shell.Program{},
		ThatCrush("-config", rc, "flow:echo", "a", "b").WritesStdout("a\nb\n"),
		ThatCrush("-config", rc, "echo", "x", "&n=v").WritesStdout("x\nv\n"),
		ThatCrush("-config", rc, "echo", "$flow").WritesStdout("<scope flow>\n"),
		ThatCrush("-config", rc, "echo", "&", "$").WritesStdout("&\n$\n"),

		ThatCrush("-config", rc, "nope").
			ExitsWith(2).WritesStderr("Error: unknown command name nope\n"),
		ThatCrush("-config", rc, "flow:nope").
			ExitsWith(2).WritesStderr("Error: unknown command name flow:nope\n"),
		ThatCrush("-config", rc, "echo", "$nope").
			ExitsWith(2).WritesStderr("Error: unknown variable nope\n"),
		ThatCrush("-config", rc, "break").
			ExitsWith(2).WritesStderr("Error: break outside of a loop\n"),
		ThatCrush("-config", rc, "flow:loop", "x").
			ExitsWith(2).WritesStderrContaining("loop body must be a command"),
	)
}

func TestProgram_BadConfig(t *testing.T) {
	setup(t)
	rc := filepath.Join(t.TempDir(), "rc.yaml")
	testutil.WriteFile(t, rc, "colour: red\n")
	Test(t, shell.Program{},
		ThatCrush("-config", rc, "echo").ExitsWith(2).WritesStderrContaining(rc),
	)
}

func TestProgram_History(t *testing.T) {
	rc, db := setup(t)
	Test(t, shell.Program{},
		ThatCrush("-config", rc, "echo", "a").WritesStdout("a\n"),
		ThatCrush("-config", rc, "nope").
			ExitsWith(2).WritesStderr("Error: unknown command name nope\n"),
		ThatCrush("-config", rc, "-nohistory", "echo", "b").WritesStdout("b\n"),
	)

	st, err := store.NewStore(db)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	jobs, err := st.SessionJobs("test-session")
	st.Close()
	if err != nil {
		t.Fatalf("SessionJobs: %v", err)
	}
	type job struct {
		Command string
		Status  int
	}
	var got []job
	for _, j := range jobs {
		got = append(got, job{j.Command, j.Status})
	}
	if diff := cmp.Diff([]job{{"echo a", 0}, {"nope", 2}}, got); diff != "" {
		t.Errorf("recorded jobs (-want +got):\n%s", diff)
	}

	Test(t, shell.HistoryProgram,
		ThatCrush("-config", rc, "-history").WritesStdout("1\t0\techo a\n2\t2\tnope\n"),
		ThatCrush("-config", rc, "-history", "other-session").DoesNothing(),
		ThatCrush("-config", rc, "-history", "-json", "test-session").
			WritesStdoutContaining(`{"seq":2,"session":"test-session","command":"nope","status":2,`),
		ThatCrush("-config", rc, "-history", "a", "b").
			ExitsWith(2).WritesStderrContaining("at most one argument"),
		ThatCrush("-config", rc, "echo").
			ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestProgram_HistoryPaths(t *testing.T) {
	rc, _ := setup(t)
	other := filepath.Join(t.TempDir(), "other.db")
	Test(t, shell.Program{},
		ThatCrush("-config", rc, "-db", other, "echo", "c").WritesStdout("c\n"),
	)
	Test(t, shell.HistoryProgram,
		// Nothing recorded in the default database yet.
		ThatCrush("-config", rc, "-history").DoesNothing(),
		ThatCrush("-config", rc, "-db", other, "-history").WritesStdout("1\t0\techo c\n"),
	)

	disabled := filepath.Join(t.TempDir(), "rc.yaml")
	testutil.WriteFile(t, disabled, "history: ''\n")
	Test(t, shell.Program{},
		ThatCrush("-config", disabled, "echo", "d").WritesStdout("d\n"),
	)
	Test(t, shell.HistoryProgram,
		ThatCrush("-config", disabled, "-history").
			ExitsWith(2).WritesStderr("job history is disabled\n"),
	)
}
