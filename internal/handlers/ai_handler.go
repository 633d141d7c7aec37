package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"dsatrack/internal/llm"
	"dsatrack/internal/prompts"
	"dsatrack/internal/utils"
)

// AIHandler proxies explanation requests to the configured LLM
// provider. provider may be nil when no API key is configured; the
// endpoint then reports the feature as unavailable instead of failing
// the whole service at boot.
type AIHandler struct {
	provider llm.Provider
	prompts  *prompts.Manager
	logger   *zap.Logger
}

func NewAIHandler(provider llm.Provider, pm *prompts.Manager, logger *zap.Logger) *AIHandler {
	return &AIHandler{provider: provider, prompts: pm, logger: logger}
}

type explainRequest struct {
	ProblemName string   `json:"problemName"`
	Topic       string   `json:"topic"`
	Difficulty  string   `json:"difficulty"`
	Concepts    []string `json:"concepts"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

func (h *AIHandler) ExplainHandler(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		utils.JSONError(w, http.StatusServiceUnavailable, "ai_unavailable", "AI explanations are not configured")
		return
	}

	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if req.ProblemName == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing_problem_name", "problemName is required")
		return
	}

	prompt, err := h.prompts.BuildExplainPrompt(req.ProblemName, req.Topic, req.Difficulty, req.Concepts)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to build prompt")
		return
	}

	explanation, err := h.provider.GenerateExplanation(r.Context(), prompt)
	if err != nil {
		h.logger.Error("explanation generation failed",
			zap.String("problem", req.ProblemName),
			zap.Error(err),
		)
		utils.JSONError(w, http.StatusBadGateway, "ai_error", "Failed to generate explanation")
		return
	}

	utils.JSON(w, http.StatusOK, explainResponse{Explanation: explanation})
}
