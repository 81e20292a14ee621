package store_test

import (
	"path/filepath"
	"testing"

	"src.crush.sh/pkg/store"
	"src.crush.sh/pkg/store/storedefs"
	"src.crush.sh/pkg/store/storetest"
)

func TestJob(t *testing.T) {
	storetest.TestJob(t, store.MustGetTempStore(t))
}

func TestNewStore_PersistsAcrossOpens(t *testing.T) {
	name := filepath.Join(t.TempDir(), "db")
	st, err := store.NewStore(name)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	st.AddJob(storedefs.Job{Session: "s", Command: "echo"})
	st.Close()

	st, err = store.NewStore(name)
	if err != nil {
		t.Fatalf("NewStore again: %v", err)
	}
	defer st.Close()
	job, err := st.Job(1)
	if err != nil || job.Command != "echo" {
		t.Errorf("Job(1) -> %v, %v", job, err)
	}
}
