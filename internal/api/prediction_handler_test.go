package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/domain/prediction"
)

func TestGetRankPrediction(t *testing.T) {
	t.Parallel()

	svc := &mockPredictionService{
		result: &domain.PredictionResult{
			PredictedRank:   42_000,
			Confidence:      0.61,
			Factors:         map[string]float64{"study_consistency": 72},
			Recommendations: []string{"Increase mock test frequency"},
			RiskLevel:       domain.RiskLevelMedium,
		},
	}
	handler := NewPredictionHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/predictions/rank?completed_chapters=60&total_chapters=98", nil)
	rr := httptest.NewRecorder()
	handler.GetRankPrediction(rr, asUser(req, uuid.New()))

	require.Equal(t, http.StatusOK, rr.Code)

	var result domain.PredictionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 42_000, result.PredictedRank)
	assert.InDelta(t, 0.61, result.Confidence, 0.001)

	assert.Equal(t, 60, svc.lastSyllabus.CompletedChapters)
	assert.Equal(t, 98, svc.lastSyllabus.TotalChapters)
}

func TestGetRankPredictionDefaultSyllabus(t *testing.T) {
	t.Parallel()

	svc := &mockPredictionService{result: prediction.FallbackResult()}
	handler := NewPredictionHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/predictions/rank", nil)
	rr := httptest.NewRecorder()
	handler.GetRankPrediction(rr, asUser(req, uuid.New()))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, svc.lastSyllabus.CompletedChapters)
	assert.Equal(t, 0, svc.lastSyllabus.TotalChapters)
}

// A degraded prediction still answers 200. The fallback payload carries the
// low-confidence signal instead.
func TestGetRankPredictionFallbackIsStillOK(t *testing.T) {
	t.Parallel()

	handler := NewPredictionHandler(&mockPredictionService{result: prediction.FallbackResult()})

	req := httptest.NewRequest(http.MethodGet, "/api/predictions/rank", nil)
	rr := httptest.NewRecorder()
	handler.GetRankPrediction(rr, asUser(req, uuid.New()))

	require.Equal(t, http.StatusOK, rr.Code)

	var result domain.PredictionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 950_000, result.PredictedRank)
	assert.Equal(t, domain.RiskLevelHigh, result.RiskLevel)
}

func TestGetRankPredictionUnauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewPredictionHandler(&mockPredictionService{result: prediction.FallbackResult()})

	req := httptest.NewRequest(http.MethodGet, "/api/predictions/rank", nil)
	rr := httptest.NewRecorder()
	handler.GetRankPrediction(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
