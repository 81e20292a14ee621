// Crush runs a single command: a builtin such as flow:echo, or an external
// command found on the search path. Output values are printed one per line.
package main

import (
	"os"

	"src.crush.sh/pkg/buildinfo"
	"src.crush.sh/pkg/prog"
	"src.crush.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, shell.HistoryProgram, shell.Program{})))
}
