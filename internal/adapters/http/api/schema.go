package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/shopsteward/hub/internal/domain/model"
)

// jobSchemaJSON describes the body accepted by POST /api/jobs. Unknown
// properties are allowed and dropped on decode. An empty job_number is
// rejected because it could never be fetched back by path.
const jobSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["job_number", "customer", "part_number", "operations"],
  "properties": {
    "job_number":  {"type": "string", "minLength": 1},
    "customer":    {"type": "string"},
    "part_number": {"type": "string"},
    "operations":  {"type": "array", "items": {"type": "string"}}
  }
}`

var jobSchema = jsonschema.MustCompileString("job.json", jobSchemaJSON)

// decodeJob reads, validates and decodes a job body. Errors match
// ErrBadRequest and, when the body exceeded its limit, ErrBodyTooLarge.
func decodeJob(body io.Reader) (model.Job, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.Job{}, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return model.Job{}, fmt.Errorf("%w: read body: %w", ErrBadRequest, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Job{}, fmt.Errorf("%w: invalid JSON: %w", ErrBadRequest, err)
	}
	if err := jobSchema.Validate(doc); err != nil {
		return model.Job{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return model.Job{}, fmt.Errorf("%w: decode job: %w", ErrBadRequest, err)
	}
	return job, nil
}

// detailFor renders a client-facing message for a decode failure.
func detailFor(err error) string {
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		return "Invalid job: " + leafMessage(verr)
	}
	if errors.Is(err, ErrBodyTooLarge) {
		return "Request body too large"
	}
	return "Invalid JSON body"
}

// leafMessage returns the most specific validation failure.
func leafMessage(verr *jsonschema.ValidationError) string {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	if verr.InstanceLocation == "" {
		return verr.Message
	}
	return fmt.Sprintf("%s: %s", verr.InstanceLocation, verr.Message)
}
