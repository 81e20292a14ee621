package lang

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

var (
	// ErrEmptyClosure is returned when invoking a closure with no stages.
	ErrEmptyClosure = errors.New("empty closures not supported")
	// ErrBlockingValue is returned when a value that can only be computed by
	// running a job is resolved in non-blocking mode.
	ErrBlockingValue = errors.New("value cannot be computed without blocking")
	// ErrNoValue is returned when a sub-job used as a value produced no
	// output.
	ErrNoValue = errors.New("job produced no value")
	// ErrReaderGone is returned when sending to a channel whose receiver has
	// been closed.
	ErrReaderGone = errors.New("reader gone")
	// ErrReadonlyScope is returned when declaring a variable in a readonly
	// scope.
	ErrReadonlyScope = errors.New("scope is readonly")
	// ErrExternalCmdOpts is returned when an external command is passed named
	// arguments.
	ErrExternalCmdOpts = errors.New("external commands don't accept named arguments")
)

// ArgumentError is returned when a command is called with arguments of the
// wrong number, name or type.
type ArgumentError struct {
	Message string
}

// Error returns the message.
func (e *ArgumentError) Error() string { return e.Message }

// NewArgumentError returns an *ArgumentError with a formatted message.
func NewArgumentError(format string, args ...any) error {
	return &ArgumentError{fmt.Sprintf(format, args...)}
}

// UnknownVariableError is returned when a label cannot be resolved.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return "unknown variable " + e.Name
}

// UnknownCommandError is returned when the head of a call is neither bound to
// a value nor found on the command search path.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command name " + e.Name
}

// NotACommandError is returned when the head of a call resolves to a value
// that is not callable.
type NotACommandError struct {
	Name string
}

func (e *NotACommandError) Error() string {
	return "not a command " + e.Name
}

// ExternalCmdExit contains the exit status of an external command that did
// not exit successfully.
type ExternalCmdExit struct {
	CmdName string
	// Exit code of the process; -1 if the process was terminated by a signal.
	ExitCode int
	Pid      int
	// Description of the process state, as given by os.ProcessState.String.
	State string
}

// NewExternalCmdExit converts an error returned by (*exec.Cmd).Wait into an
// ExternalCmdExit. Other errors are returned unchanged.
func NewExternalCmdExit(name string, err error) error {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return err
	}
	return ExternalCmdExit{
		CmdName:  name,
		ExitCode: exitErr.ExitCode(),
		Pid:      exitErr.Pid(),
		State:    exitErr.String(),
	}
}

func (exit ExternalCmdExit) Error() string {
	quotedName := strconv.Quote(exit.CmdName)
	if exit.ExitCode >= 0 {
		return quotedName + " exited with " + strconv.Itoa(exit.ExitCode)
	}
	return quotedName + " " + exit.State
}
