package api

import (
	"errors"
	"net/http"

	"github.com/shopsteward/hub/internal/domain/scenario"
	"github.com/shopsteward/hub/pkg/logger"
)

// ScenarioHandler handles scenario requests.
type ScenarioHandler struct {
	scenarios ScenarioService
	log       logger.Logger
}

// NewScenarioHandler creates a new scenario handler.
func NewScenarioHandler(scenarios ScenarioService, log logger.Logger) *ScenarioHandler {
	return &ScenarioHandler{scenarios: scenarios, log: log}
}

// HandleGetScenario handles GET /api/scenario/{scenario_type}.
func (h *ScenarioHandler) HandleGetScenario(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_scenario"
	sc, err := h.scenarios.Scenario(r.Context(), pathParam(r, "scenario_type"))
	if err != nil {
		detail := ""
		if errors.Is(err, scenario.ErrInvalidScenario) {
			detail = err.Error()
		}
		writeError(r.Context(), w, h.log, Wrap(op, err), detail)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}
