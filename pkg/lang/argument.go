package lang

// Argument is a resolved argument. Name is empty for positional arguments.
type Argument struct {
	Name  string
	Value Value
}

// ArgumentDefinition is an unresolved argument.
type ArgumentDefinition struct {
	Name  string
	Value ValueDefinition
}

// Unnamed returns a positional ArgumentDefinition.
func Unnamed(v ValueDefinition) ArgumentDefinition {
	return ArgumentDefinition{Value: v}
}

// Named returns a named ArgumentDefinition.
func Named(name string, v ValueDefinition) ArgumentDefinition {
	return ArgumentDefinition{Name: name, Value: v}
}

// CanBlock reports whether resolving the argument can block.
func (a ArgumentDefinition) CanBlock(args []ArgumentDefinition, sc *Scope) bool {
	return a.Value.CanBlock(args, sc)
}

func (a ArgumentDefinition) String() string {
	if a.Name == "" {
		return a.Value.String()
	}
	return a.Name + "=" + a.Value.String()
}

// CanBlockArguments reports whether resolving any of the arguments can block.
func CanBlockArguments(args []ArgumentDefinition, sc *Scope) bool {
	for _, arg := range args {
		if arg.CanBlock(args, sc) {
			return true
		}
	}
	return false
}

// CompileArguments resolves all the arguments in order. Handles of jobs
// started while resolving are appended to deps. Resolving may block.
func CompileArguments(args []ArgumentDefinition, deps *[]JobJoinHandle, sc *Scope, p *Printer) ([]Argument, error) {
	compiled := make([]Argument, len(args))
	for i, arg := range args {
		v, err := arg.Value.Compile(deps, sc, p)
		if err != nil {
			return nil, err
		}
		compiled[i] = Argument{arg.Name, v}
	}
	return compiled, nil
}
