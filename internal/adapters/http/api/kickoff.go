package api

import (
	"net/http"

	"github.com/shopsteward/hub/pkg/logger"
)

// KickoffHandler handles kickoff checklist requests.
type KickoffHandler struct {
	kickoff KickoffService
	log     logger.Logger
}

// NewKickoffHandler creates a new kickoff handler.
func NewKickoffHandler(kickoff KickoffService, log logger.Logger) *KickoffHandler {
	return &KickoffHandler{kickoff: kickoff, log: log}
}

// HandleGetKickoff handles GET /api/jobs/{job_id}/kickoff. The job does not
// have to exist.
func (h *KickoffHandler) HandleGetKickoff(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_kickoff"
	checklist, err := h.kickoff.KickoffChecklist(r.Context(), pathParam(r, "job_id"))
	if err != nil {
		writeError(r.Context(), w, h.log, Wrap(op, err), "")
		return
	}
	writeJSON(w, http.StatusOK, checklist)
}
