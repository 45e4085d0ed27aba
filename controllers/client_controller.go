package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/database"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/logger"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/models"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/repository"
)

type CreateClientRequest struct {
	Name           string   `json:"name"`
	Gender         string   `json:"gender"`
	BirthDate      string   `json:"birth_date,omitempty"` // YYYY-MM-DD
	HeightCM       *float64 `json:"height_cm,omitempty"`
	WeightKG       *float64 `json:"weight_kg,omitempty"`
	TargetWeightKG *float64 `json:"target_weight_kg,omitempty"`
	ActivityLevel  string   `json:"activity_level"`
	Conditions     []string `json:"conditions,omitempty"`
	Restrictions   []string `json:"restrictions,omitempty"`
}

func CreateClient(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	client := models.Client{
		Name:           req.Name,
		Gender:         req.Gender,
		HeightCM:       req.HeightCM,
		WeightKG:       req.WeightKG,
		TargetWeightKG: req.TargetWeightKG,
		ActivityLevel:  req.ActivityLevel,
		Conditions:     strings.Join(req.Conditions, ","),
		Restrictions:   strings.Join(req.Restrictions, ","),
	}

	// A bad date is a data-entry problem, not a reason to reject the record;
	// the planner defaults the age when the birth date is absent.
	if req.BirthDate != "" {
		if birth, err := time.Parse("2006-01-02", req.BirthDate); err == nil {
			client.BirthDate = &birth
		} else {
			logger.Warn("Unparseable birth date on client create", "birth_date", req.BirthDate)
		}
	}

	repo := repository.NewClientRepository(database.DB)
	if err := repo.CreateClient(r.Context(), &client); err != nil {
		logger.Error("Failed to create client", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create client")
		return
	}

	logger.Info("Client created", "client_id", client.ID)
	writeJSON(w, http.StatusCreated, client)
}

func GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	repo := repository.NewClientRepository(database.DB)
	client, err := repo.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	writeJSON(w, http.StatusOK, client)
}

func ListClients(w http.ResponseWriter, r *http.Request) {
	repo := repository.NewClientRepository(database.DB)
	clients, err := repo.ListClients(r.Context())
	if err != nil {
		logger.Error("Failed to list clients", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list clients")
		return
	}

	writeJSON(w, http.StatusOK, clients)
}

func clientIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "client_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid client ID")
		return 0, false
	}
	return uint(id), true
}
