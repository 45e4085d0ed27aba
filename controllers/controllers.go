package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/config"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/database"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/llm"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/planner"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/repository"
)

var cfg = &config.ServiceConfig{}

// Configure hands the loaded service config to the controllers. Called once
// from main before the router starts serving.
func Configure(c *config.ServiceConfig) {
	cfg = c
}

// newPlanService builds a planning service per request. The service is
// stateless, so this is cheap and keeps controllers free of shared state.
func newPlanService() *planner.Service {
	svc := planner.NewService(repository.NewClientRepository(database.DB), llm.NewClient())
	if cfg.LLMTimeoutSeconds > 0 {
		svc.Timeout = time.Duration(cfg.LLMTimeoutSeconds) * time.Second
	}
	if cfg.Defaults.Age > 0 {
		svc.Policy = planner.MissingDataPolicy{
			DefaultAge:      cfg.Defaults.Age,
			DefaultWeightKG: cfg.Defaults.WeightKG,
			DefaultHeightCM: cfg.Defaults.HeightCM,
		}
	}
	return svc
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
