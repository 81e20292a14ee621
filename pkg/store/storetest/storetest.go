// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"src.crush.sh/pkg/store/storedefs"
)

var (
	t0    = time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	jobs1 = []storedefs.Job{
		{Session: "s1", Command: "echo a", Status: 0, Time: t0},
		{Session: "s2", Command: "flow:echo b", Status: 1, Time: t0.Add(time.Second)},
		{Session: "s1", Command: "ls", Status: 2, Time: t0.Add(2 * time.Second)},
	}
)

// TestJob tests the job history functionality of a Store.
func TestJob(t *testing.T, store storedefs.Store) {
	seq, err := store.NextJobSeq()
	if seq != 1 || err != nil {
		t.Errorf("store.NextJobSeq() -> %v, %v, want 1, nil", seq, err)
	}

	// AddJob
	for i, job := range jobs1 {
		wantSeq := i + 1
		seq, err := store.AddJob(job)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddJob(%v) -> %v, %v, want %v, nil", job, seq, err, wantSeq)
		}
	}

	seq, err = store.NextJobSeq()
	if seq != 4 || err != nil {
		t.Errorf("store.NextJobSeq() -> %v, %v, want 4, nil", seq, err)
	}

	// Job
	for i, want := range jobs1 {
		want.Seq = i + 1
		job, err := store.Job(i + 1)
		if err != nil {
			t.Errorf("store.Job(%v) -> error %v", i+1, err)
		}
		if diff := cmp.Diff(want, job); diff != "" {
			t.Errorf("store.Job(%v) (-want +got):\n%s", i+1, diff)
		}
	}
	if _, err := store.Job(10); err != storedefs.ErrNoMatchingJob {
		t.Errorf("store.Job(10) -> error %v, want %v", err, storedefs.ErrNoMatchingJob)
	}

	// JobsWithSeq
	jobs, err := store.JobsWithSeq(2, 4)
	if err != nil {
		t.Errorf("store.JobsWithSeq(2, 4) -> error %v", err)
	}
	if diff := cmp.Diff([]string{"flow:echo b", "ls"}, commands(jobs)); diff != "" {
		t.Errorf("store.JobsWithSeq(2, 4) (-want +got):\n%s", diff)
	}

	// SessionJobs
	jobs, err = store.SessionJobs("s1")
	if err != nil {
		t.Errorf("store.SessionJobs(s1) -> error %v", err)
	}
	if diff := cmp.Diff([]string{"echo a", "ls"}, commands(jobs)); diff != "" {
		t.Errorf("store.SessionJobs(s1) (-want +got):\n%s", diff)
	}
	if jobs, _ := store.SessionJobs("nope"); len(jobs) != 0 {
		t.Errorf("store.SessionJobs(nope) -> %v, want none", jobs)
	}

	// DelJob
	if err := store.DelJob(1); err != nil {
		t.Errorf("store.DelJob(1) -> error %v", err)
	}
	if _, err := store.Job(1); err != storedefs.ErrNoMatchingJob {
		t.Errorf("store.Job(1) after DelJob -> error %v, want %v", err, storedefs.ErrNoMatchingJob)
	}
	// Sequence numbers are not reused.
	if seq, _ := store.NextJobSeq(); seq != 4 {
		t.Errorf("store.NextJobSeq() after DelJob -> %v, want 4", seq)
	}
}

func commands(jobs []storedefs.Job) []string {
	var cmds []string
	for _, job := range jobs {
		cmds = append(cmds, job.Command)
	}
	return cmds
}
