package handlers

import (
	"net/http"

	"dsatrack/internal/models"
	"dsatrack/internal/suggest"
	"dsatrack/internal/utils"
)

// SuggestionHandler serves the static suggestion lists for the two
// experiment variants.
type SuggestionHandler struct{}

func NewSuggestionHandler() *SuggestionHandler {
	return &SuggestionHandler{}
}

type suggestionsResponse struct {
	Variant     models.Variant       `json:"variant"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

// GetSuggestionsHandler returns the suggestion list for ?variant=, or
// assigns a variant when none (or an unknown one) is given. Recording
// the exposure is a separate POST to the analytics endpoint, matching
// how the experiment was originally instrumented.
func (h *SuggestionHandler) GetSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	variant := models.Variant(r.URL.Query().Get("variant"))
	if !variant.Valid() {
		variant = suggest.AssignVariant()
	}

	utils.JSON(w, http.StatusOK, suggestionsResponse{
		Variant:     variant,
		Suggestions: suggest.ForVariant(variant),
	})
}
