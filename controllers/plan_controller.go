package controllers

import (
	"errors"
	"net/http"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/logger"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/planner"
)

// GeneratePlan runs the planning engine for a client and returns the plan
// inline. The caller receives either a complete plan or a NotFound error;
// external-generation failures never surface here.
func GeneratePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	result, err := newPlanService().GeneratePlan(r.Context(), id)
	if err != nil {
		if errors.Is(err, planner.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "Client not found")
			return
		}
		logger.Error("Plan generation failed", "client_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate plan")
		return
	}

	logger.Info("Plan generated", "client_id", id, "source", result.Source,
		"daily_calories", result.Plan.Target.DailyCalories)
	writeJSON(w, http.StatusOK, result)
}
