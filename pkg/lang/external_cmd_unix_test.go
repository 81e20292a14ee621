//go:build unix

package lang

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.crush.sh/pkg/testutil"
)

// Returns a scope whose search path contains a directory with the given
// scripts.
func scopeWithScripts(t *testing.T, scripts map[string]string) (*Scope, string) {
	dir := t.TempDir()
	for name, body := range scripts {
		testutil.MakeExecutable(t, filepath.Join(dir, name), "#!/bin/sh\n"+body)
	}
	sc := NewScope()
	sc.Declare(SearchPathVar, NewList(File(dir)))
	return sc, dir
}

func TestInvoke_ResolvesExternalCommand(t *testing.T) {
	sc, dir := scopeWithScripts(t, map[string]string{"hello": ""})
	var got []Argument
	sc.Declare(LauncherVar, NewSimpleCommand("fake-cmd", func(ctx *ExecutionContext) error {
		got = ctx.Arguments
		return nil
	}, false))

	tp := newTestPrinter()
	out, collect := capture()
	h, err := call(NewLabel("hello"), Unnamed(lit("x")), Named("n", lit(1))).
		Invoke(sc, tp.Printer, EmptyChannel(), out)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	h.Join(tp.Printer)
	collect()
	want := []Argument{{"", File(filepath.Join(dir, "hello"))}, {"", "x"}, {"n", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("launcher arguments (-want +got):\n%s", diff)
	}
}

func TestInvoke_ExternalCommandNotFound(t *testing.T) {
	sc, _ := scopeWithScripts(t, map[string]string{"hello": ""})
	called := false
	sc.Declare(LauncherVar, NewSimpleCommand("fake-cmd", func(*ExecutionContext) error {
		called = true
		return nil
	}, false))

	for _, name := range []string{"missing", "ns:hello"} {
		tp := newTestPrinter()
		out, collect := capture()
		_, err := call(NewLabel(name)).Invoke(sc, tp.Printer, EmptyChannel(), out)
		var unknown *UnknownCommandError
		if !errors.As(err, &unknown) || unknown.Name != name {
			t.Errorf("%s: got error %v, want unknown command", name, err)
		}
		collect()
	}
	if called {
		t.Errorf("launcher called for a command that was not found")
	}
}

func TestInvoke_SearchPathAcceptsStrings(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeExecutable(t, filepath.Join(dir, "hello"), "#!/bin/sh\necho hello\n")
	sc := NewScope()
	sc.Declare(SearchPathVar, NewList(filepath.Join(dir, "nonexistent"), dir))

	tp := newTestPrinter()
	out, collect := capture()
	h, err := call(NewLabel("hello")).Invoke(sc, tp.Printer, EmptyChannel(), out)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	h.Join(tp.Printer)
	if diff := cmp.Diff([]Value{"hello"}, collect()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestExternalCmd(t *testing.T) {
	sc, _ := scopeWithScripts(t, map[string]string{
		"greet":   "echo hi\necho there\n",
		"args":    "echo \"$1-$2\"\n",
		"upcase":  "tr a-z A-Z\n",
		"fail":    "exit 3\n",
		"warn":    "echo oops >&2\n",
		"noinput": "exit 0\n",
	})

	tests := []struct {
		name       string
		call       CallDefinition
		input      []Value
		wantOutput []Value
		wantPrint  string
	}{
		{name: "output lines", call: call(NewLabel("greet")),
			wantOutput: []Value{"hi", "there"}},
		{name: "arguments", call: call(NewLabel("args"), Unnamed(lit("x")), Unnamed(lit(3))),
			wantOutput: []Value{"x-3"}},
		{name: "input lines", call: call(NewLabel("upcase")), input: []Value{"a", "b"},
			wantOutput: []Value{"A", "B"}},
		{name: "unread input", call: call(NewLabel("noinput")), input: []Value{"a", "b"}},
		{name: "exit status", call: call(NewLabel("fail")),
			wantPrint: "Error: \"fail\" exited with 3\n"},
		{name: "standard error", call: call(NewLabel("warn")),
			wantPrint: "oops\n"},
		{name: "named argument", call: call(NewLabel("greet"), Named("n", lit(1))),
			wantPrint: "Error: " + ErrExternalCmdOpts.Error() + "\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tp := newTestPrinter()
			out, collect := capture()
			h, err := test.call.Invoke(sc, tp.Printer, feed(test.input...), out)
			if err != nil {
				t.Fatalf("Invoke: %v", err)
			}
			h.Join(tp.Printer)
			if diff := cmp.Diff(test.wantOutput, collect()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
			if got := tp.buf.String(); got != test.wantPrint {
				t.Errorf("printed %q, want %q", got, test.wantPrint)
			}
		})
	}
}

func TestExternalCmd_BadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []Argument
		want string
	}{
		{"no arguments", nil, "expected the path"},
		{"wrong type", []Argument{{"", 1}}, "found integer"},
	}
	for _, test := range tests {
		out, collect := capture()
		err := ExternalCmd.Invoke(&ExecutionContext{
			Arguments: test.args, Input: EmptyChannel(), Output: out})
		out.Close()
		collect()
		var argErr *ArgumentError
		if !errors.As(err, &argErr) || !strings.Contains(argErr.Message, test.want) {
			t.Errorf("%s: got error %v, want argument error containing %q", test.name, err, test.want)
		}
	}
}

func TestNewExternalCmdExit(t *testing.T) {
	if err := NewExternalCmdExit("x", errBoom); err != errBoom {
		t.Errorf("non-exit error changed to %v", err)
	}
	exit := ExternalCmdExit{CmdName: "x", ExitCode: -1, State: "signal: killed"}
	if got := exit.Error(); got != `"x" signal: killed` {
		t.Errorf("Error -> %q", got)
	}
}
