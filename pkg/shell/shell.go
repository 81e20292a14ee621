// Package shell is the entry point for running commands with crush.
package shell

import (
	"fmt"
	"os"
	"strings"

	"src.crush.sh/pkg/config"
	"src.crush.sh/pkg/logutil"
	"src.crush.sh/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It runs the command named by the first
// argument, passing it the remaining arguments; see ParseCall.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("no command given")
	}
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	session := Session()
	restoreSHLVL := incSHLVL()
	defer restoreSHLVL()
	cleanup := initSignal(fds[2])
	defer cleanup()

	root, err := InitScope(cfg.SearchPath)
	if err != nil {
		return err
	}
	status := RunCall(root, ParseCall(args), fds)

	if !f.NoHistory {
		err := recordJob(historyPath(f, cfg), session, strings.Join(args, " "), status)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot record job history:", err)
		}
	}
	return prog.Exit(status)
}

// Loads the configuration file named by -config, or the default one. The log
// file set in the configuration is used unless -log is given.
func loadConfig(f *prog.Flags) (*config.Config, error) {
	path := f.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if f.Log == "" && cfg.Log != "" {
		if err := logutil.SetOutputFile(cfg.Log); err != nil {
			return nil, err
		}
	}
	logger.Println("loaded config from", path)
	return cfg, nil
}
