package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dsatrack/internal/middleware"
	"dsatrack/internal/models"
	"dsatrack/internal/utils"
)

// AnalyticsStore is the surface the A/B endpoints need.
type AnalyticsStore interface {
	Record(ctx context.Context, ev *models.ABEvent) error
	Results(ctx context.Context) (*models.ABResults, error)
}

type AnalyticsHandler struct {
	store AnalyticsStore
}

func NewAnalyticsHandler(store AnalyticsStore) *AnalyticsHandler {
	return &AnalyticsHandler{store: store}
}

type recordEventRequest struct {
	Variant   models.Variant `json:"variant"`
	Page      string         `json:"page"`
	Timestamp string         `json:"timestamp"`
}

func (h *AnalyticsHandler) RecordHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid token")
		return
	}

	var req recordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if !req.Variant.Valid() {
		utils.JSONError(w, http.StatusBadRequest, "invalid_variant", "variant must be difficulty-based or topic-based")
		return
	}

	ev := &models.ABEvent{
		UserID:  userID,
		Variant: req.Variant,
		Page:    req.Page,
	}
	// client timestamps are best-effort; fall back to server time
	if ts, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
		ev.Timestamp = ts
	}

	if err := h.store.Record(r.Context(), ev); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to record A/B test data")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "A/B test data recorded",
		"data":    ev,
	})
}

func (h *AnalyticsHandler) ResultsHandler(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.Results(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch A/B test results")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{"results": results})
}
