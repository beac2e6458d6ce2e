package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/shopsteward/hub/internal/adapters/repository"
	"github.com/shopsteward/hub/internal/domain/model"
	"github.com/shopsteward/hub/pkg/logger"
)

type createJobResponse struct {
	Status  string `json:"status"`
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

type listJobsResponse struct {
	Jobs  []model.Job `json:"jobs"`
	Count int         `json:"count"`
}

// JobsHandler handles the job registry endpoints.
type JobsHandler struct {
	jobs         JobService
	log          logger.Logger
	maxBodyBytes int64
}

// NewJobsHandler creates a new jobs handler.
func NewJobsHandler(jobs JobService, log logger.Logger, maxBodyBytes int64) *JobsHandler {
	return &JobsHandler{jobs: jobs, log: log, maxBodyBytes: maxBodyBytes}
}

// HandleCreateJob handles POST /api/jobs.
func (h *JobsHandler) HandleCreateJob(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_job"
	ctx := r.Context()

	job, err := decodeJob(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		writeError(ctx, w, h.log, Wrap(op, err), detailFor(err))
		return
	}

	if _, err := h.jobs.CreateJob(ctx, job); err != nil {
		if errors.Is(err, repository.ErrInvalidJob) {
			err = WrapKind(op, ErrBadRequest, err)
			writeError(ctx, w, h.log, err, "Invalid job: job_number must not be empty")
			return
		}
		writeError(ctx, w, h.log, Wrap(op, err), "")
		return
	}

	writeJSON(w, http.StatusOK, createJobResponse{
		Status:  "success",
		JobID:   job.JobNumber,
		Message: fmt.Sprintf("Job %s created successfully", job.JobNumber),
	})
}

// HandleListJobs handles GET /api/jobs.
func (h *JobsHandler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_jobs"
	jobs, count, err := h.jobs.ListJobs(r.Context())
	if err != nil {
		writeError(r.Context(), w, h.log, Wrap(op, err), "")
		return
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	writeJSON(w, http.StatusOK, listJobsResponse{Jobs: jobs, Count: count})
}

// HandleGetJob handles GET /api/jobs/{job_id}.
func (h *JobsHandler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_job"
	jobID := pathParam(r, "job_id")

	job, err := h.jobs.GetJob(r.Context(), jobID)
	if err != nil {
		detail := ""
		if errors.Is(err, repository.ErrNotFound) {
			detail = fmt.Sprintf("Job %s not found", jobID)
		}
		writeError(r.Context(), w, h.log, Wrap(op, err), detail)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// pathParam returns the decoded value of a chi URL parameter. chi routes on
// r.URL.RawPath when it is set and on the already decoded r.URL.Path
// otherwise, so only the former needs unescaping.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
