package lang

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
)

// ExternalCmd launches an external process. The first argument is the path of
// the executable; the remaining positional arguments are converted to strings
// and passed to the process.
//
// Input values are written to the standard input of the process, one per line.
// Each line of its standard output is sent as a string value. Its standard
// error is printed as diagnostic lines.
var ExternalCmd = NewSimpleCommand("cmd", runExternalCmd, true)

func runExternalCmd(ctx *ExecutionContext) error {
	if len(ctx.Arguments) == 0 {
		return NewArgumentError("expected the path of an executable")
	}
	var path string
	switch exe := ctx.Arguments[0].Value.(type) {
	case File:
		path = string(exe)
	case string:
		path = exe
	default:
		return NewArgumentError("wrong type of executable, expected file or string, found %s", Kind(exe))
	}
	var args []string
	for _, arg := range ctx.Arguments[1:] {
		if arg.Name != "" {
			return ErrExternalCmdOpts
		}
		args = append(args, ToString(arg.Value))
	}

	cmd := exec.Command(path, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		defer stdin.Close()
		for v := range ctx.Input.Chan() {
			if _, err := fmt.Fprintln(stdin, ToString(v)); err != nil {
				// The process is no longer reading.
				return
			}
		}
	}()
	stderrDone := make(chan struct{})
	go func() {
		defer close(stderrDone)
		scanLines(stderr, func(line string) { ctx.Printer.Line(line) })
	}()

	var sendErr error
	scanLines(stdout, func(line string) {
		if sendErr == nil {
			sendErr = ctx.Output.Send(line)
		}
	})
	<-stderrDone
	if err := cmd.Wait(); err != nil {
		return NewExternalCmdExit(filepath.Base(path), err)
	}
	return sendErr
}

// Calls f with each line read from r, without the line ending. Reads until EOF
// or an error.
func scanLines(r io.Reader, f func(string)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		f(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Println("error on reading:", err)
	}
}
