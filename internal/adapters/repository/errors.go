package repository

import "errors"

// Sentinel kinds for job registry errors.
var (
	ErrNotFound   = errors.New("job not found")
	ErrInvalidJob = errors.New("invalid job")
)
