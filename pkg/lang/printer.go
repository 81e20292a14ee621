package lang

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

// Printer emits output lines and diagnostics. It is shared by pointer between
// all the jobs of an invocation and is safe for concurrent use.
type Printer struct {
	mu     sync.Mutex
	w      io.Writer
	color  bool
	errors atomic.Int64
}

// NewPrinter creates a Printer writing to w. Error lines are colored if w is a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, color: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Line prints a line. A trailing newline is added if missing.
func (p *Printer) Line(s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	io.WriteString(p.w, s)
}

// Error reports an error as a single diagnostic line. It does nothing if err
// is nil.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	p.errors.Add(1)
	if p.color {
		p.Line("\033[31;1mError:\033[m " + err.Error())
	} else {
		p.Line("Error: " + err.Error())
	}
}

// Errorf is like Error, but formats the message like fmt.Errorf.
func (p *Printer) Errorf(format string, args ...any) {
	p.Error(fmt.Errorf(format, args...))
}

// Errors returns the number of errors reported so far.
func (p *Printer) Errors() int {
	return int(p.errors.Load())
}
