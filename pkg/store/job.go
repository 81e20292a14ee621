package store

import (
	"encoding/binary"
	"encoding/json"

	bolt "go.etcd.io/bbolt"
	. "src.crush.sh/pkg/store/storedefs"
)

const bucketJob = "job"

func init() {
	initDB["initialize job history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketJob))
		return err
	}
}

// NextJobSeq returns the next sequence number of the job history.
func (s *dbStore) NextJobSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketJob))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddJob adds a new job to the job history and returns its sequence number.
// The Seq field of job is ignored.
func (s *dbStore) AddJob(job Job) (int, error) {
	data, err := json.Marshal(job)
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketJob))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), data)
	})
	return int(seq), err
}

// DelJob deletes a job history item with the given sequence number.
func (s *dbStore) DelJob(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketJob))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Job queries the job history item with the specified sequence number.
func (s *dbStore) Job(seq int) (Job, error) {
	var job Job
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketJob))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingJob
		}
		var err error
		job, err = unmarshalJob(seq, v)
		return err
	})
	return job, err
}

// IterateJobs iterates all the jobs in the specified range, and calls the
// callback with each job sequentially.
func (s *dbStore) IterateJobs(from, upto int, f func(Job)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketJob))
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			job, err := unmarshalJob(int(unmarshalSeq(k)), v)
			if err != nil {
				return err
			}
			f(job)
		}
		return nil
	})
}

// JobsWithSeq returns all jobs within the specified range.
func (s *dbStore) JobsWithSeq(from, upto int) ([]Job, error) {
	var jobs []Job
	err := s.IterateJobs(from, upto, func(job Job) {
		jobs = append(jobs, job)
	})
	return jobs, err
}

// SessionJobs returns all jobs run by the given session, oldest first.
func (s *dbStore) SessionJobs(session string) ([]Job, error) {
	var jobs []Job
	err := s.IterateJobs(0, int(^uint(0)>>1), func(job Job) {
		if job.Session == session {
			jobs = append(jobs, job)
		}
	})
	return jobs, err
}

func unmarshalJob(seq int, data []byte) (Job, error) {
	var job Job
	err := json.Unmarshal(data, &job)
	job.Seq = seq
	return job, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
