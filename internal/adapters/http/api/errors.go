package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopsteward/hub/internal/adapters/repository"
	service "github.com/shopsteward/hub/internal/app"
	"github.com/shopsteward/hub/internal/domain/scenario"
	"github.com/shopsteward/hub/pkg/logger"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	// ErrBodyTooLarge is a bad request whose body exceeded the configured limit.
	ErrBodyTooLarge = fmt.Errorf("%w: body too large", ErrBadRequest)
)

// Wire error codes.
const (
	codeBadRequest       = "bad_request"
	codeInvalidArgument  = "invalid_argument"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeUnavailable      = "unavailable"
	codeInternal         = "internal"
)

type errorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Wrap annotates err with the operation that produced it.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// WrapKind annotates err with op and tags it with kind so errors.Is(err, kind)
// holds.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", op, kind)
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// statusFor maps an error to its HTTP status and wire code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, codeBadRequest
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, codeBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, scenario.ErrInvalidScenario):
		return http.StatusBadRequest, codeInvalidArgument
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, codeUnavailable
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// writeError renders err with the uniform error body. detail is the
// human-readable message sent to the client; when empty the status text is
// used so internal error chains never leak.
func writeError(ctx context.Context, w http.ResponseWriter, log logger.Logger, err error, detail string) {
	status, code := statusFor(err)
	if detail == "" {
		detail = http.StatusText(status)
	}
	if status >= http.StatusInternalServerError {
		log.Error(ctx, "request failed", logger.Error(err), logger.Int("status", status))
	} else {
		log.Debug(ctx, "request rejected", logger.Error(err), logger.Int("status", status))
	}
	writeJSON(w, status, errorResponse{Code: code, Detail: detail})
}
