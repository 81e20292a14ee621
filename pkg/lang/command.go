package lang

// Command is a callable value. The set of implementations is closed: it
// consists of *SimpleCommand, *ConditionCommand and *Closure.
type Command interface {
	// Invoke runs the command.
	Invoke(ctx *ExecutionContext) error
	// CanBlock reports whether invoking the command with the given unresolved
	// arguments can block, in which case it must be run on its own goroutine.
	CanBlock(args []ArgumentDefinition, sc *Scope) bool
	// Equal always returns false; no two command values are ever equal, not
	// even a command and itself.
	Equal(rhs any) bool
	String() string

	isCommand()
}

// ExecutionContext carries everything a command needs for one invocation. It
// is created for a single Invoke call and discarded afterwards.
type ExecutionContext struct {
	Arguments []Argument
	Input     ValueReceiver
	Output    ValueSender
	Env       *Scope
	Printer   *Printer
}

// NamedArgument returns the value of the named argument with the given name.
func (ctx *ExecutionContext) NamedArgument(name string) (Value, bool) {
	for _, arg := range ctx.Arguments {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// Positional returns the values of all the positional arguments.
func (ctx *ExecutionContext) Positional() []Value {
	var vs []Value
	for _, arg := range ctx.Arguments {
		if arg.Name == "" {
			vs = append(vs, arg.Value)
		}
	}
	return vs
}

// CommandFunc is the implementation of a native command.
type CommandFunc func(ctx *ExecutionContext) error

// SimpleCommand is a native command whose ability to block is declared when
// it is created.
type SimpleCommand struct {
	name     string
	call     CommandFunc
	canBlock bool
}

// NewSimpleCommand creates a SimpleCommand. A command that may wait on
// anything, such as reading its input, should declare canBlock.
func NewSimpleCommand(name string, call CommandFunc, canBlock bool) *SimpleCommand {
	return &SimpleCommand{name, call, canBlock}
}

func (c *SimpleCommand) Invoke(ctx *ExecutionContext) error { return c.call(ctx) }

// CanBlock returns the declared flag; the arguments are not consulted.
func (c *SimpleCommand) CanBlock([]ArgumentDefinition, *Scope) bool { return c.canBlock }

func (*SimpleCommand) Equal(any) bool { return false }

func (c *SimpleCommand) String() string { return "<builtin " + c.name + ">" }

func (*SimpleCommand) isCommand() {}

// ConditionCommand is a native command that never blocks by itself, but whose
// arguments may; control flow primitives are typically ConditionCommands.
type ConditionCommand struct {
	name string
	call CommandFunc
}

// NewConditionCommand creates a ConditionCommand.
func NewConditionCommand(name string, call CommandFunc) *ConditionCommand {
	return &ConditionCommand{name, call}
}

func (c *ConditionCommand) Invoke(ctx *ExecutionContext) error { return c.call(ctx) }

// CanBlock reports whether any of the arguments can block.
func (c *ConditionCommand) CanBlock(args []ArgumentDefinition, sc *Scope) bool {
	return CanBlockArguments(args, sc)
}

func (*ConditionCommand) Equal(any) bool { return false }

func (c *ConditionCommand) String() string { return "<builtin " + c.name + ">" }

func (*ConditionCommand) isCommand() {}
