package shell

import (
	"bufio"
	"os"

	"github.com/mattn/go-isatty"
	"src.crush.sh/pkg/lang"
)

// RunCall invokes call in root. Unless stdin is a terminal, its lines are the
// input of the call. Output values are printed to stdout, one per line, and
// errors to stderr.
//
// It returns the exit status: 2 if the call could not be started, 1 if any
// error was reported while it ran, and 0 otherwise.
func RunCall(root *lang.Scope, call lang.CallDefinition, fds [3]*os.File) int {
	stdout := lang.NewPrinter(fds[1])
	stderr := lang.NewPrinter(fds[2])
	output, wait := lang.PrintSink(stdout)
	input := inputFrom(fds[0])
	defer input.Close()

	h, err := call.Invoke(root, stderr, input, output)
	if err != nil {
		stderr.Error(err)
		wait()
		return 2
	}
	h.Join(stderr)
	wait()
	if stderr.Errors() > 0 {
		return 1
	}
	return 0
}

func inputFrom(f *os.File) lang.ValueReceiver {
	if f == nil || isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return lang.EmptyChannel()
	}
	s, r := lang.Channel()
	go func() {
		defer s.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if s.Send(scanner.Text()) != nil {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Println("error reading stdin:", err)
		}
	}()
	return r
}
