package lang

import "strings"

// ValueDefinition is an unresolved value expression.
type ValueDefinition interface {
	// CompileNonBlocking resolves the value without running anything that
	// could block.
	CompileNonBlocking(sc *Scope) (Value, error)
	// Compile resolves the value, possibly running jobs. Handles of jobs that
	// are started are appended to deps.
	Compile(deps *[]JobJoinHandle, sc *Scope, p *Printer) (Value, error)
	// CanBlock reports whether Compile can block. The arguments of the
	// enclosing call are passed along.
	CanBlock(args []ArgumentDefinition, sc *Scope) bool
	String() string
}

var (
	_ ValueDefinition = Literal{}
	_ ValueDefinition = Label{}
	_ ValueDefinition = JobDefinition{}
	_ ValueDefinition = ClosureDefinition{}
)

// Literal is a ValueDefinition of an already resolved value.
type Literal struct {
	Value Value
}

func (l Literal) CompileNonBlocking(*Scope) (Value, error) { return l.Value, nil }

func (l Literal) Compile(*[]JobJoinHandle, *Scope, *Printer) (Value, error) {
	return l.Value, nil
}

func (Literal) CanBlock([]ArgumentDefinition, *Scope) bool { return false }

func (l Literal) String() string { return ToString(l.Value) }

// Label is a reference to a variable by its name path, like a:b:c.
type Label []string

// NewLabel parses a colon-separated name path into a Label.
func NewLabel(name string) Label {
	return Label(strings.Split(name, ":"))
}

// CompileNonBlocking looks the path up in sc. An unbound name results in an
// *UnknownVariableError.
func (l Label) CompileNonBlocking(sc *Scope) (Value, error) {
	v, ok := sc.LookupPath(l)
	if !ok {
		return nil, &UnknownVariableError{l.String()}
	}
	return v, nil
}

func (l Label) Compile(_ *[]JobJoinHandle, sc *Scope, _ *Printer) (Value, error) {
	return l.CompileNonBlocking(sc)
}

func (Label) CanBlock([]ArgumentDefinition, *Scope) bool { return false }

func (l Label) String() string { return FormatName(l) }

// JobDefinition is a sub-job whose first output value is used as a value.
type JobDefinition struct {
	Job Job
}

// CompileNonBlocking always fails, since running the job can block.
func (JobDefinition) CompileNonBlocking(*Scope) (Value, error) {
	return nil, ErrBlockingValue
}

// Compile runs the job with empty input and waits for its first output value.
// The remaining output is discarded. The handle of the job is appended to deps.
func (d JobDefinition) Compile(deps *[]JobJoinHandle, sc *Scope, p *Printer) (Value, error) {
	sender, receiver := Channel()
	type result struct {
		v  Value
		ok bool
	}
	// The job may run synchronously and write to the channel before Invoke
	// returns, so the first value has to be read on another goroutine.
	first := make(chan result, 1)
	go func() {
		v, ok := receiver.Recv()
		first <- result{v, ok}
		receiver.Drain()
	}()
	h, err := d.Job.Invoke(sc, p, EmptyChannel(), sender)
	if err != nil {
		return nil, err
	}
	*deps = append(*deps, h)
	r := <-first
	if !r.ok {
		return nil, ErrNoValue
	}
	return r.v, nil
}

func (d JobDefinition) CanBlock(args []ArgumentDefinition, sc *Scope) bool {
	return d.Job.CanBlock(args, sc)
}

func (d JobDefinition) String() string { return "(" + d.Job.String() + ")" }

// ClosureDefinition is a closure literal. It resolves to a *Closure that
// captures the resolving scope.
type ClosureDefinition struct {
	Jobs []Job
}

func (d ClosureDefinition) CompileNonBlocking(sc *Scope) (Value, error) {
	return NewClosure(d.Jobs, sc), nil
}

func (d ClosureDefinition) Compile(_ *[]JobJoinHandle, sc *Scope, _ *Printer) (Value, error) {
	return NewClosure(d.Jobs, sc), nil
}

// CanBlock reports whether invoking the closure can block, following the same
// rule as (*Closure).CanBlock. The stages are analyzed without the arguments of
// the enclosing call, which they never see.
func (d ClosureDefinition) CanBlock(_ []ArgumentDefinition, sc *Scope) bool {
	return closureCanBlock(d.Jobs, nil, sc)
}

func (d ClosureDefinition) String() string { return "{" + formatJobs(d.Jobs) + "}" }
