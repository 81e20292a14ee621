package lang

import (
	"errors"

	"src.crush.sh/pkg/fsutil"
	"src.crush.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[lang] ")

const (
	// SearchPathVar is the name of the variable holding the directories
	// searched for external commands, as a *List of File or string values.
	SearchPathVar = "cmd_path"
	// LauncherVar is the name of the variable holding the command that
	// launches external commands. The path of the executable is passed as
	// the first argument. If unbound, ExternalCmd is used.
	LauncherVar = "cmd"
)

// CallDefinition is an unresolved call: a command reference and its
// unresolved arguments.
type CallDefinition struct {
	Command   ValueDefinition
	Arguments []ArgumentDefinition
}

// NewCallDefinition creates a CallDefinition.
func NewCallDefinition(command ValueDefinition, args []ArgumentDefinition) CallDefinition {
	return CallDefinition{command, args}
}

// Invoke resolves the command and invokes it with the arguments.
//
// If the command and its arguments cannot block, the command runs on the
// calling goroutine and errors are returned directly. Otherwise it runs on a
// new goroutine, and errors are only reported to p when the returned handle is
// joined.
//
// Invoke takes ownership of output and closes it when the command finishes or
// the call fails.
func (c CallDefinition) Invoke(sc *Scope, p *Printer, input ValueReceiver, output ValueSender) (JobJoinHandle, error) {
	h, err := c.invoke(sc, p, input, output)
	if err != nil {
		output.Close()
		return nil, err
	}
	return h, nil
}

func (c CallDefinition) invoke(sc *Scope, p *Printer, input ValueReceiver, output ValueSender) (JobJoinHandle, error) {
	v, err := c.resolveCommand(sc)
	if err != nil {
		return nil, err
	}

	switch v.(type) {
	case *SimpleCommand, *ConditionCommand, *Closure:
		return c.invokeCommand(v.(Command), c.Arguments, sc, p, input, output)
	}

	label, isLabel := c.Command.(Label)
	if !isLabel {
		return nil, &NotACommandError{c.String()}
	}
	if len(label) != 1 {
		return nil, &UnknownCommandError{c.String()}
	}
	path, ok := resolveExternal(label[0], sc)
	if !ok {
		return nil, &UnknownCommandError{c.String()}
	}
	logger.Printf("resolved external command %s to %s", label[0], path)
	args := make([]ArgumentDefinition, 0, len(c.Arguments)+1)
	args = append(args, Unnamed(Literal{File(path)}))
	args = append(args, c.Arguments...)
	return c.invokeCommand(launcher(sc), args, sc, p, input, output)
}

// Resolves the command without blocking. An unbound name is not an error
// here, since it may still name an external command.
func (c CallDefinition) resolveCommand(sc *Scope) (Value, error) {
	v, err := c.Command.CompileNonBlocking(sc)
	var unknown *UnknownVariableError
	if errors.As(err, &unknown) {
		return nil, nil
	}
	return v, err
}

func (c CallDefinition) invokeCommand(cmd Command, args []ArgumentDefinition, sc *Scope, p *Printer, input ValueReceiver, output ValueSender) (JobJoinHandle, error) {
	if !cmd.CanBlock(args, sc) && !CanBlockArguments(args, sc) {
		// Nothing here can block, so it is safe to run on this goroutine.
		defer output.Close()
		var deps []JobJoinHandle
		err := runCommand(cmd, &deps, args, sc, p, input, output)
		if err != nil {
			ManyHandles(deps).Join(p)
			return nil, err
		}
		return ManyHandles(deps), nil
	}
	return spawn(c.String(), func() error {
		defer output.Close()
		var deps []JobJoinHandle
		err := runCommand(cmd, &deps, args, sc, p, input, output)
		ManyHandles(deps).Join(p)
		return err
	}), nil
}

func runCommand(cmd Command, deps *[]JobJoinHandle, args []ArgumentDefinition, sc *Scope, p *Printer, input ValueReceiver, output ValueSender) error {
	// Keep upstream writers from getting stuck on values nobody reads.
	defer func() { go input.Drain() }()
	compiled, err := CompileArguments(args, deps, sc, p)
	if err != nil {
		return err
	}
	return cmd.Invoke(&ExecutionContext{compiled, input, output, sc, p})
}

// CanBlock reports whether invoking the call can block. Calls that don't
// resolve to a command, including external commands, are assumed to block.
func (c CallDefinition) CanBlock(args []ArgumentDefinition, sc *Scope) bool {
	v, err := c.Command.CompileNonBlocking(sc)
	if err != nil {
		return true
	}
	switch v.(type) {
	case *SimpleCommand, *ConditionCommand, *Closure:
		return v.(Command).CanBlock(args, sc) || CanBlockArguments(c.Arguments, sc)
	}
	return true
}

func (c CallDefinition) String() string { return c.Command.String() }

// Searches the directories in the search path variable for an executable.
func resolveExternal(name string, sc *Scope) (string, bool) {
	v, ok := sc.Lookup(SearchPathVar)
	if !ok {
		return "", false
	}
	list, ok := v.(*List)
	if !ok {
		return "", false
	}
	var dirs []string
	for _, dir := range list.Dump() {
		switch dir := dir.(type) {
		case File:
			dirs = append(dirs, string(dir))
		case string:
			dirs = append(dirs, dir)
		}
	}
	return fsutil.Search(dirs, name)
}

func launcher(sc *Scope) Command {
	if v, ok := sc.Lookup(LauncherVar); ok {
		if cmd, ok := v.(Command); ok {
			return cmd
		}
	}
	return ExternalCmd
}
