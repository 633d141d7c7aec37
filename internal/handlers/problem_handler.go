package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"dsatrack/internal/middleware"
	"dsatrack/internal/models"
	"dsatrack/internal/utils"
)

// ProblemRepo is the storage surface the problem and dashboard
// endpoints need. The log is append-only so there is no update/delete.
type ProblemRepo interface {
	Create(ctx context.Context, p *models.Problem) (*models.Problem, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Problem, error)
	FindRecentByOwner(ctx context.Context, ownerID string, limit int64) ([]models.Problem, error)
}

type ProblemHandler struct {
	repo ProblemRepo
}

func NewProblemHandler(repo ProblemRepo) *ProblemHandler {
	return &ProblemHandler{repo: repo}
}

type createProblemRequest struct {
	Title            string            `json:"title"`
	Category         string            `json:"category"`
	Difficulty       models.Difficulty `json:"difficulty"`
	Platform         string            `json:"platform"`
	TimeSpentMinutes int               `json:"timeSpentMinutes"`
	Notes            string            `json:"notes"`
	Solution         string            `json:"solution"`
}

func (h *ProblemHandler) CreateProblemHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid token")
		return
	}

	var req createProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if req.Title == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing_title", "Title is required")
		return
	}
	if !req.Difficulty.Valid() {
		utils.JSONError(w, http.StatusBadRequest, "invalid_difficulty", "Difficulty must be one of: Easy, Medium, Hard")
		return
	}
	if req.TimeSpentMinutes < 0 {
		utils.JSONError(w, http.StatusBadRequest, "invalid_time_spent", "timeSpentMinutes must not be negative")
		return
	}

	problem := &models.Problem{
		OwnerID:          ownerID,
		Title:            req.Title,
		Category:         req.Category,
		Difficulty:       req.Difficulty,
		Platform:         req.Platform,
		TimeSpentMinutes: req.TimeSpentMinutes,
		Notes:            req.Notes,
		Solution:         req.Solution,
	}

	created, err := h.repo.Create(r.Context(), problem)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to track problem")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "Problem tracked successfully",
		"problem": created,
	})
}

func (h *ProblemHandler) GetProblemsHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid token")
		return
	}

	problems, err := h.repo.FindByOwner(r.Context(), ownerID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch problems")
		return
	}

	utils.JSON(w, http.StatusOK, models.ProblemsResponse{
		Total: len(problems),
		Items: problems,
	})
}
