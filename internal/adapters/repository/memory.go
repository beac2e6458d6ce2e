package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopsteward/hub/internal/domain/model"
)

// MemoryStore is a JobStore held in process memory. It is safe for
// concurrent use; writers to the same job number are serialized and the
// last one wins.
//
// Jobs are copied on the way in and out so callers never share slices with
// the store.
type MemoryStore struct {
	mu    sync.RWMutex
	jobs  map[string]model.Job
	order []string // job numbers by first insertion
}

var _ JobStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		jobs: make(map[string]model.Job),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put stores job, replacing any record with the same job number. A replaced
// job keeps its original position in List.
func (s *MemoryStore) Put(_ context.Context, job model.Job) (bool, error) {
	if job.JobNumber == "" {
		return false, fmt.Errorf("%w: empty job number", ErrInvalidJob)
	}
	job = job.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced := s.jobs[job.JobNumber]
	if !replaced {
		s.order = append(s.order, job.JobNumber)
	}
	s.jobs[job.JobNumber] = job
	return replaced, nil
}

// Get returns a copy of the job stored under jobNumber.
func (s *MemoryStore) Get(_ context.Context, jobNumber string) (model.Job, error) {
	s.mu.RLock()
	job, ok := s.jobs[jobNumber]
	s.mu.RUnlock()

	if !ok {
		return model.Job{}, fmt.Errorf("%w: %s", ErrNotFound, jobNumber)
	}
	return job.Clone(), nil
}

// List returns copies of all jobs in first-insertion order. The result is
// never nil.
func (s *MemoryStore) List(_ context.Context) ([]model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Job, 0, len(s.order))
	for _, jobNumber := range s.order {
		out = append(out, s.jobs[jobNumber].Clone())
	}
	return out, nil
}

// Count returns the number of distinct job numbers stored.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
