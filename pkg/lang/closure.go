package lang

import "strings"

// Closure is a command defined in crush code, made up of a sequence of jobs.
// It captures the scope it was defined in; the captured scope is never
// modified by invocations.
type Closure struct {
	jobs []Job
	env  *Scope
}

var _ Command = &Closure{}

// NewClosure creates a Closure from its jobs and the defining scope.
func NewClosure(jobs []Job, env *Scope) *Closure {
	return &Closure{jobs, env}
}

// Invoke runs the jobs of the closure in order in a new scope, whose parent is
// the defining scope and whose caller is ctx.Env. Named arguments are
// declared in the new scope.
//
// With a single job, the job uses the input and output of ctx directly.
// Otherwise, the first job reads ctx.Input, the last job writes ctx.Output,
// and the output of all other jobs is printed. Each job is finished, and its
// output printed, before the next one starts. If the new scope gets stopped, the remaining jobs are
// skipped.
func (c *Closure) Invoke(ctx *ExecutionContext) error {
	env := c.env.CreateChild(ctx.Env, false)
	for _, arg := range ctx.Arguments {
		if arg.Name != "" {
			if err := env.Declare(arg.Name, arg.Value); err != nil {
				return err
			}
		}
	}

	switch len(c.jobs) {
	case 0:
		return ErrEmptyClosure
	case 1:
		if env.IsStopped() {
			return nil
		}
		h, err := c.jobs[0].Invoke(env, ctx.Printer, ctx.Input, ctx.Output)
		if err != nil {
			return err
		}
		h.Join(ctx.Printer)
		return nil
	}

	last := len(c.jobs) - 1
	for i, job := range c.jobs {
		if env.IsStopped() {
			return nil
		}
		input := EmptyChannel()
		if i == 0 {
			input = ctx.Input
		}
		output, printed := ctx.Output, func() {}
		if i != last {
			output, printed = PrintSink(ctx.Printer)
		}
		// Invoke closes output on every path, so printed always returns.
		h, err := job.Invoke(env, ctx.Printer, input, output)
		if err != nil {
			printed()
			return err
		}
		h.Join(ctx.Printer)
		printed()
	}
	return nil
}

// CanBlock reports whether invoking the closure can block. A closure with a
// single job can block if that job can; a closure with more jobs always can.
func (c *Closure) CanBlock(args []ArgumentDefinition, sc *Scope) bool {
	return closureCanBlock(c.jobs, args, sc)
}

func closureCanBlock(jobs []Job, args []ArgumentDefinition, sc *Scope) bool {
	if len(jobs) == 1 {
		return jobs[0].CanBlock(args, sc)
	}
	return true
}

func (*Closure) Equal(any) bool { return false }

func (c *Closure) String() string { return formatJobs(c.jobs) }

func (*Closure) isCommand() {}

func formatJobs(jobs []Job) string {
	strs := make([]string, len(jobs))
	for i, job := range jobs {
		strs[i] = job.String()
	}
	return strings.Join(strs, "; ")
}
