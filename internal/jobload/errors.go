package jobload

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Run.
var (
	ErrInvalidConfig = errors.New("invalid load config")
	ErrHealthCheck   = errors.New("service health check failed")
	ErrVerification  = errors.New("verification failed")
)

// statusError reports an unexpected HTTP status.
type statusError struct {
	path   string
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.path, e.status, e.body)
}

// ackError reports a create acknowledgement that does not match the job.
type ackError struct {
	want string
	got  CreateResponse
}

func (e *ackError) Error() string {
	return fmt.Sprintf("unexpected acknowledgement for %s: status=%q job_id=%q", e.want, e.got.Status, e.got.JobID)
}
