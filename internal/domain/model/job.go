// Package model contains domain models passed between layers.
package model

// Job is a shop work order keyed by its job number.
type Job struct {
	JobNumber  string   `json:"job_number"`
	Customer   string   `json:"customer"`
	PartNumber string   `json:"part_number"`
	Operations []string `json:"operations"`
}

// Clone returns a copy of j that shares no memory with it.
// A nil operation list is normalized to an empty one so it encodes as [].
func (j Job) Clone() Job {
	ops := make([]string, len(j.Operations))
	copy(ops, j.Operations)
	j.Operations = ops
	return j
}
