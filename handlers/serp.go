package handlers

import (
	"net/http"
	"strconv"

	"github.com/widewildonline-ai/serp-tracker-web/data/repos"
	"github.com/widewildonline-ai/serp-tracker-web/models"
)

type SerpHandler struct {
	repo *repos.SerpRepo
}

func NewSerpHandler(repo *repos.SerpRepo) *SerpHandler {
	return &SerpHandler{repo}
}

// GetHistory returns every capture for a keyword's content items, newest
// first.
func (h *SerpHandler) GetHistory(w http.ResponseWriter, r *http.Request) Result {
	keywordID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid keyword ID.")
	}

	results, err := h.repo.GetHistoryByKeywordID(keywordID)
	if err != nil {
		return InternalError(err, "get serp history: ")
	}

	res := models.GetSerpHistoryResponse{
		KeywordID: keywordID,
		Results:   make([]models.SerpResult, 0, len(results)),
	}
	for _, result := range results {
		res.Results = append(res.Results, models.SerpResult{
			ID:         result.ID,
			ContentID:  result.ContentID,
			Device:     string(result.Device),
			Rank:       result.Rank,
			RankChange: result.RankChange,
			IsExposed:  result.IsExposed,
			CapturedAt: result.CapturedAt,
		})
	}

	return Ok(res)
}
