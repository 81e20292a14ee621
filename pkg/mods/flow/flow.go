// Package flow implements the flow namespace, which contains the basic
// control flow commands.
package flow

import (
	"errors"

	"src.crush.sh/pkg/lang"
)

var errBreakOutsideLoop = errors.New("break outside of a loop")

// Declare creates the readonly flow namespace in root and makes its commands
// visible in root without the flow: prefix.
func Declare(root *lang.Scope) error {
	ns, err := root.CreateNamespace("flow")
	if err != nil {
		return err
	}
	commands := map[string]lang.Command{
		"echo":  lang.NewSimpleCommand("echo", echo, false),
		"break": lang.NewSimpleCommand("break", breakFn, false),
		"if":    lang.NewConditionCommand("if", ifFn),
		"loop":  lang.NewConditionCommand("loop", loop),
	}
	for name, cmd := range commands {
		if err := ns.Declare(name, cmd); err != nil {
			return err
		}
	}
	ns.Readonly()
	root.Use(ns)
	return nil
}

// Outputs the value of each argument.
func echo(ctx *lang.ExecutionContext) error {
	for _, arg := range ctx.Arguments {
		if err := ctx.Output.Send(arg.Value); err != nil {
			return err
		}
	}
	return nil
}

// Stops the innermost loop.
func breakFn(ctx *lang.ExecutionContext) error {
	if len(ctx.Arguments) != 0 {
		return lang.NewArgumentError("break takes no arguments")
	}
	if !ctx.Env.Break() {
		return errBreakOutsideLoop
	}
	return nil
}

// if $cond $then [$else]
//
// Invokes $then if $cond is true, and $else otherwise.
func ifFn(ctx *lang.ExecutionContext) error {
	args := ctx.Positional()
	if len(args) != 2 && len(args) != 3 {
		return lang.NewArgumentError("if takes 2 or 3 arguments, got %d", len(args))
	}
	cond, ok := args[0].(bool)
	if !ok {
		return lang.NewArgumentError("condition must be bool, found %s", lang.Kind(args[0]))
	}
	branches := make([]lang.Command, len(args)-1)
	for i, v := range args[1:] {
		cmd, ok := v.(lang.Command)
		if !ok {
			return lang.NewArgumentError("branch must be a command, found %s", lang.Kind(v))
		}
		branches[i] = cmd
	}

	switch {
	case cond:
		return invoke(ctx, branches[0], ctx.Input, ctx.Env)
	case len(branches) == 2:
		return invoke(ctx, branches[1], ctx.Input, ctx.Env)
	}
	return nil
}

// loop $body
//
// Invokes $body repeatedly until it breaks. The body reads no input.
func loop(ctx *lang.ExecutionContext) error {
	args := ctx.Positional()
	if len(args) != 1 {
		return lang.NewArgumentError("loop takes 1 argument, got %d", len(args))
	}
	body, ok := args[0].(lang.Command)
	if !ok {
		return lang.NewArgumentError("loop body must be a command, found %s", lang.Kind(args[0]))
	}

	loopEnv := ctx.Env.CreateChild(ctx.Env, true)
	for !loopEnv.IsStopped() {
		if err := invoke(ctx, body, lang.EmptyChannel(), loopEnv); err != nil {
			return err
		}
	}
	return nil
}

// Invokes cmd with no arguments, writing to a new handle of the output of ctx.
func invoke(ctx *lang.ExecutionContext, cmd lang.Command, input lang.ValueReceiver, env *lang.Scope) error {
	output := ctx.Output.Dup()
	defer output.Close()
	return cmd.Invoke(&lang.ExecutionContext{
		Input:   input,
		Output:  output,
		Env:     env,
		Printer: ctx.Printer,
	})
}
