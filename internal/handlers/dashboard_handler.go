package handlers

import (
	"net/http"
	"time"

	"dsatrack/internal/middleware"
	"dsatrack/internal/models"
	"dsatrack/internal/stats"
	"dsatrack/internal/utils"
)

const recentActivityLimit = 10

// DashboardHandler serves the derived statistics views. It only reads
// records and hands them to the stats engine; the engine never touches
// storage itself.
type DashboardHandler struct {
	repo       ProblemRepo
	weeklyGoal int

	// now is swapped in tests for a fixed clock
	now func() time.Time
}

func NewDashboardHandler(repo ProblemRepo, weeklyGoal int) *DashboardHandler {
	return &DashboardHandler{
		repo:       repo,
		weeklyGoal: weeklyGoal,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *DashboardHandler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid token")
		return
	}

	records, err := h.repo.FindByOwner(r.Context(), ownerID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch problems")
		return
	}

	// asOf is bound once here so every bucket of the series shares it
	utils.JSON(w, http.StatusOK, stats.Compute(records, h.now(), h.weeklyGoal))
}

func (h *DashboardHandler) GetRecentActivityHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid token")
		return
	}

	recent, err := h.repo.FindRecentByOwner(r.Context(), ownerID, recentActivityLimit)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch recent activity")
		return
	}

	items := make([]models.ActivityItem, 0, len(recent))
	for _, p := range recent {
		items = append(items, models.ActivityItem{
			Problem:    p.Title,
			Topic:      p.Category,
			Difficulty: p.Difficulty,
			Date:       p.CreatedAt.UTC().Format("2006-01-02"),
		})
	}

	utils.JSON(w, http.StatusOK, models.RecentActivityResponse{RecentActivity: items})
}
