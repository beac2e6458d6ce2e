// Package repository holds the job registry: the in-memory store of shop
// work orders keyed by job number.
package repository

import (
	"context"

	"github.com/shopsteward/hub/internal/domain/model"
)

// JobStore provides read/write access to jobs.
type JobStore interface {
	// Put stores job under its job number, replacing any previous record.
	// It reports whether an existing record was replaced.
	Put(ctx context.Context, job model.Job) (bool, error)

	// Get returns the job stored under jobNumber.
	// Returns ErrNotFound if the job number was never stored.
	Get(ctx context.Context, jobNumber string) (model.Job, error)

	// List returns every stored job in first-insertion order.
	List(ctx context.Context) ([]model.Job, error)

	// Count returns the number of distinct job numbers stored.
	Count(ctx context.Context) int
}
