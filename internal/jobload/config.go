package jobload

import (
	"time"

	"github.com/shopsteward/hub/internal/domain/model"
)

// Config holds configuration for a load run.
type Config struct {
	BaseURL    string        // Base URL of the hub
	NumJobs    int           // Number of jobs to generate
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Optional JSON file for generated jobs
	Verbose    bool          // Log every failed request
}

// Job is the body posted to POST /api/jobs.
type Job = model.Job

// CreateResponse mirrors the POST /api/jobs acknowledgement.
type CreateResponse struct {
	Status  string `json:"status"`
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

// ListResponse mirrors GET /api/jobs.
type ListResponse struct {
	Jobs  []Job `json:"jobs"`
	Count int   `json:"count"`
}

// Stats holds run statistics.
type Stats struct {
	JobsGenerated     int
	JobsSubmitted     int
	JobsCreated       int
	JobsFailed        int
	JobsVerified      int
	JobsMismatched    int
	ListedCount       int
	ScenariosVerified int
	KickoffVerified   bool
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
