package api

import (
	"net/http"

	"github.com/phrazzld/prepwise-api/internal/api/shared"
	"github.com/phrazzld/prepwise-api/internal/domain/prediction"
	"github.com/phrazzld/prepwise-api/internal/service"
)

// PredictionHandler handles rank prediction API requests.
type PredictionHandler struct {
	predictionService service.PredictionService
}

// NewPredictionHandler creates a new PredictionHandler with the given dependencies.
func NewPredictionHandler(predictionService service.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
	}
}

// GetRankPrediction handles the /api/predictions/rank endpoint.
// Syllabus progress arrives as optional query parameters; when absent the
// pipeline treats the syllabus as untracked (completion 0).
func (h *PredictionHandler) GetRankPrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	syllabus := prediction.SyllabusProgress{
		CompletedChapters: queryInt(r, "completed_chapters", 0),
		TotalChapters:     queryInt(r, "total_chapters", 0),
	}

	result := h.predictionService.PredictRank(r.Context(), userID, syllabus)

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
