// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import (
	"errors"
	"time"
)

// ErrNoMatchingJob is the error returned when a job history query completes
// with no result.
var ErrNoMatchingJob = errors.New("no matching job")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextJobSeq() (int, error)
	AddJob(job Job) (int, error)
	DelJob(seq int) error
	Job(seq int) (Job, error)
	JobsWithSeq(from, upto int) ([]Job, error)
	SessionJobs(session string) ([]Job, error)
}

// Job is an entry in the job history.
type Job struct {
	Seq int `json:"-"`
	// Identifies the shell process that ran the job.
	Session string `json:"session"`
	Command string `json:"command"`
	// Exit status of the shell after running the job.
	Status int       `json:"status"`
	Time   time.Time `json:"time"`
}
