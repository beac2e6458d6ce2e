package repository

import "github.com/shopsteward/hub/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithCapacity pre-sizes the store for n jobs.
func WithCapacity(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.jobs = make(map[string]model.Job, n)
			s.order = make([]string, 0, n)
		}
	}
}
