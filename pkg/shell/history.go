package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"src.crush.sh/pkg/config"
	"src.crush.sh/pkg/env"
	"src.crush.sh/pkg/prog"
	"src.crush.sh/pkg/store"
	"src.crush.sh/pkg/store/storedefs"
)

// Session returns the identifier of the current session, which is stamped on
// the jobs recorded in the history. It is taken from $CRUSH_SESSION if set.
// Otherwise a new identifier is generated and exported, so that crush
// processes started by this one belong to the same session.
func Session() string {
	if id := os.Getenv(env.CRUSH_SESSION); id != "" {
		return id
	}
	id := uuid.NewString()
	os.Setenv(env.CRUSH_SESSION, id)
	return id
}

func historyPath(f *prog.Flags, cfg *config.Config) string {
	if f.DB != "" {
		return f.DB
	}
	return cfg.History
}

// Records a job in the history database at path. An empty path disables the
// history.
func recordJob(path, session, command string, status int) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	st, err := store.NewStore(path)
	if err != nil {
		return err
	}
	defer st.Close()
	seq, err := st.AddJob(storedefs.Job{
		Session: session, Command: command, Status: status, Time: time.Now()})
	if err != nil {
		return err
	}
	logger.Println("recorded job", seq)
	return nil
}

// HistoryProgram is the subprogram that lists the job history. It runs when
// -history is given. If an argument is given, only jobs of the session it
// names are listed.
var HistoryProgram prog.Program = historyProgram{}

type historyProgram struct{}

var errHistoryDisabled = errors.New("job history is disabled")

func (historyProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if !f.History {
		return prog.ErrNotSuitable
	}
	if len(args) > 1 {
		return prog.BadUsage("-history takes at most one argument")
	}
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	path := historyPath(f, cfg)
	if path == "" {
		return errHistoryDisabled
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		// Nothing has been recorded yet.
		return nil
	}
	st, err := store.NewStore(path)
	if err != nil {
		return err
	}
	defer st.Close()

	var jobs []storedefs.Job
	if len(args) == 1 {
		jobs, err = st.SessionJobs(args[0])
	} else {
		var next int
		next, err = st.NextJobSeq()
		if err == nil {
			jobs, err = st.JobsWithSeq(0, next)
		}
	}
	if err != nil {
		return err
	}
	for _, job := range jobs {
		if f.JSON {
			data, err := json.Marshal(struct {
				Seq int `json:"seq"`
				storedefs.Job
			}{job.Seq, job})
			if err != nil {
				return err
			}
			fmt.Fprintf(fds[1], "%s\n", data)
		} else {
			fmt.Fprintf(fds[1], "%d\t%d\t%s\n", job.Seq, job.Status, job.Command)
		}
	}
	return nil
}
