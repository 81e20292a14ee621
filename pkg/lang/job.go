package lang

import (
	"context"
	"fmt"
	"runtime/pprof"
)

// Job is one stage of a closure.
type Job struct {
	Call CallDefinition
}

// NewJob creates a Job from a call.
func NewJob(call CallDefinition) Job {
	return Job{call}
}

// Invoke invokes the call of the job. See (CallDefinition).Invoke.
func (j Job) Invoke(sc *Scope, p *Printer, input ValueReceiver, output ValueSender) (JobJoinHandle, error) {
	return j.Call.Invoke(sc, p, input, output)
}

// CanBlock reports whether invoking the job can block.
func (j Job) CanBlock(args []ArgumentDefinition, sc *Scope) bool {
	return j.Call.CanBlock(args, sc)
}

func (j Job) String() string { return j.Call.String() }

// JobJoinHandle is a handle to zero or more units of execution started by an
// invocation.
type JobJoinHandle interface {
	// Join waits for all the units to finish. Errors from units that ran on
	// their own goroutines are reported to p.
	Join(p *Printer)
}

// ManyHandles aggregates zero or more handles.
type ManyHandles []JobJoinHandle

// Join joins all the handles in order.
func (hs ManyHandles) Join(p *Printer) {
	for _, h := range hs {
		h.Join(p)
	}
}

// A handle to a single goroutine.
type asyncHandle struct {
	name string
	done chan struct{}
	err  error
}

// Join waits for the goroutine and reports its error, if any.
func (h *asyncHandle) Join(p *Printer) {
	<-h.done
	p.Error(h.err)
}

// Runs f on a new goroutine labelled with name and returns a handle to it. A
// panic in f is recovered and turned into an error.
func spawn(name string, f func() error) JobJoinHandle {
	h := &asyncHandle{name: name, done: make(chan struct{})}
	logger.Println("spawning job", name)
	go pprof.Do(context.Background(), pprof.Labels("job", name), func(context.Context) {
		defer close(h.done)
		defer func() {
			if r := recover(); r != nil {
				h.err = fmt.Errorf("job %s panicked: %v", name, r)
			}
		}()
		h.err = f()
	})
	return h
}
