package handlers

import (
	"net/http"

	"github.com/widewildonline-ai/serp-tracker-web/jobs"
	"github.com/widewildonline-ai/serp-tracker-web/models"
)

type RecommendHandler struct {
	jobs *jobs.Service
}

func NewRecommendHandler(jobs *jobs.Service) *RecommendHandler {
	return &RecommendHandler{jobs}
}

// GetRecommendations classifies every keyword from the current snapshot and
// returns the prioritized worklist.
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) Result {
	recs, err := h.jobs.BuildRecommendations()
	if err != nil {
		return InternalError(err, "build recommendations: ")
	}

	res := models.GetRecommendationsResponse{
		Recommendations: make([]models.Recommendation, 0, len(recs)),
	}
	for _, rec := range recs {
		m := models.Recommendation{
			KeywordID:           rec.KeywordID,
			Keyword:             rec.Keyword,
			Status:              string(rec.Status),
			MonthlySearch:       rec.Volume,
			Competition:         string(rec.Competition),
			ExposureProbability: rec.ExposureProbability,
			ExpectedImpact:      rec.ExpectedImpact,
		}
		if rec.Account != nil {
			m.Account = &models.RecommendedAccount{
				ID:        rec.Account.ID,
				Name:      rec.Account.Name,
				BlogScore: rec.Account.BlogScore,
			}
		}
		res.Recommendations = append(res.Recommendations, m)
	}

	return Ok(res)
}
