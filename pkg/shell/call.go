package shell

import (
	"strings"

	"src.crush.sh/pkg/fsutil"
	"src.crush.sh/pkg/lang"
)

// ParseCall builds a call from command-line arguments. The first argument
// names the command, possibly with a namespace prefix like flow:echo. A name
// containing a path separator is a path to an executable, which is passed to
// the launcher of external commands.
//
// Each following argument is a string literal, except that:
//
//   - &name=value is a named argument with the string value.
//
//   - $name is the value of the variable name, which may also have a
//     namespace prefix.
func ParseCall(args []string) lang.CallDefinition {
	var head lang.ValueDefinition
	var defs []lang.ArgumentDefinition
	if fsutil.DontSearch(args[0]) {
		head = lang.NewLabel(lang.LauncherVar)
		defs = append(defs, lang.Unnamed(lang.Literal{Value: lang.File(args[0])}))
	} else {
		head = lang.NewLabel(args[0])
	}
	for _, arg := range args[1:] {
		defs = append(defs, parseArgument(arg))
	}
	return lang.NewCallDefinition(head, defs)
}

func parseArgument(arg string) lang.ArgumentDefinition {
	if strings.HasPrefix(arg, "&") {
		if name, value, ok := strings.Cut(arg[1:], "="); ok && name != "" {
			return lang.Named(name, parseValue(value))
		}
	}
	return lang.Unnamed(parseValue(arg))
}

func parseValue(s string) lang.ValueDefinition {
	if len(s) > 1 && s[0] == '$' {
		return lang.NewLabel(s[1:])
	}
	return lang.Literal{Value: s}
}
