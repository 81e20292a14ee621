package lang

import (
	"os"
	"testing"
)

func TestPrinter_Line(t *testing.T) {
	tp := newTestPrinter()
	tp.Line("a")
	tp.Line("b\n")
	tp.Line("")
	if got := tp.buf.String(); got != "a\nb\n\n" {
		t.Errorf("printed %q", got)
	}
}

func TestPrinter_Error(t *testing.T) {
	tp := newTestPrinter()
	tp.Error(nil)
	if tp.Errors() != 0 || tp.buf.String() != "" {
		t.Errorf("nil error is reported")
	}
	tp.Error(&UnknownCommandError{"foo"})
	tp.Errorf("bad %d", 42)
	if got := tp.buf.String(); got != "Error: unknown command name foo\nError: bad 42\n" {
		t.Errorf("printed %q", got)
	}
	if tp.Errors() != 2 {
		t.Errorf("got %d errors, want 2", tp.Errors())
	}
}

func TestPrinter_NoColorOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	p := NewPrinter(w)
	p.Error(errBoom)
	w.Close()
	buf := make([]byte, 64)
	n, _ := r.Read(buf)
	if got := string(buf[:n]); got != "Error: boom\n" {
		t.Errorf("printed %q", got)
	}
}
