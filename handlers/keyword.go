package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/data/repos"
	"github.com/widewildonline-ai/serp-tracker-web/jobs"
	"github.com/widewildonline-ai/serp-tracker-web/models"
)

// keywordStore is the slice of KeywordRepo the handler uses.
type keywordStore interface {
	CreateKeyword(keyword data.Keyword) (int, error)
	GetKeywords() ([]data.Keyword, error)
	GetKeywordByID(id int) (*data.Keyword, error)
	UpdateKeyword(keyword data.Keyword) error
	DeleteKeyword(id int) error
}

type KeywordHandler struct {
	repo keywordStore
	jobs *jobs.Service
}

func NewKeywordHandler(repo *repos.KeywordRepo, jobs *jobs.Service) *KeywordHandler {
	return &KeywordHandler{repo, jobs}
}

func (h *KeywordHandler) CreateKeyword(w http.ResponseWriter, r *http.Request) Result {
	var req models.CreateKeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	normalized := strings.TrimSpace(req.Keyword)
	if normalized == "" {
		return BadRequest("Keyword is required.")
	}
	if len([]rune(normalized)) > 50 {
		return BadRequest("Keyword must be at most 50 characters.")
	}

	keyword := data.Keyword{
		Keyword:    normalized,
		SubKeyword: req.SubKeyword,
	}

	id, err := h.repo.CreateKeyword(keyword)
	if err != nil {
		return InternalError(err, "create keyword: ")
	}

	return Created(id)
}

// BulkCreateKeywords registers a list of keyword texts in one call, skipping
// blanks and reporting what was skipped.
func (h *KeywordHandler) BulkCreateKeywords(w http.ResponseWriter, r *http.Request) Result {
	var req models.BulkCreateKeywordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}
	if len(req.Keywords) == 0 {
		return BadRequest("At least one keyword is required.")
	}

	res := models.BulkCreateKeywordsResponse{Created: make([]int, 0, len(req.Keywords)), Skipped: make([]string, 0)}
	seen := make(map[string]bool, len(req.Keywords))
	for _, raw := range req.Keywords {
		normalized := strings.TrimSpace(raw)
		lower := strings.ToLower(normalized)
		if normalized == "" || seen[lower] {
			res.Skipped = append(res.Skipped, raw)
			continue
		}
		seen[lower] = true

		id, err := h.repo.CreateKeyword(data.Keyword{Keyword: normalized})
		if err != nil {
			return InternalError(err, "bulk create keywords: ")
		}
		res.Created = append(res.Created, id)
	}

	return Ok(res)
}

func (h *KeywordHandler) GetKeywords(w http.ResponseWriter, r *http.Request) Result {
	keywords, err := h.repo.GetKeywords()
	if err != nil {
		return InternalError(err, "get keywords: ")
	}

	res := &models.GetKeywordsResponse{Keywords: make([]models.Keyword, 0, len(keywords))}
	for _, k := range keywords {
		res.Keywords = append(res.Keywords, toKeywordModel(k))
	}

	return Ok(res)
}

func (h *KeywordHandler) GetKeyword(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid keyword ID.")
	}

	keyword, err := h.repo.GetKeywordByID(id)
	if err != nil {
		return InternalError(err, "get keyword: ")
	}
	if keyword == nil {
		return NotFound("Keyword not found.")
	}

	return Ok(toKeywordModel(*keyword))
}

func (h *KeywordHandler) UpdateKeyword(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid keyword ID.")
	}

	var req models.UpdateKeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	normalized := strings.TrimSpace(req.Keyword)
	if normalized == "" {
		return BadRequest("Keyword is required.")
	}

	keyword := data.Keyword{
		ID:         id,
		Keyword:    normalized,
		SubKeyword: req.SubKeyword,
	}

	if err := h.repo.UpdateKeyword(keyword); err != nil {
		return InternalError(err, "update keyword: ")
	}

	return Ok(nil)
}

func (h *KeywordHandler) DeleteKeyword(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid keyword ID.")
	}

	if err := h.repo.DeleteKeyword(id); err != nil {
		return InternalError(err, "delete keyword: ")
	}

	return Ok(nil)
}

// RecalculateMetrics refreshes opportunity and difficulty scores for every
// keyword from its stored volume, competition, and current rank.
func (h *KeywordHandler) RecalculateMetrics(w http.ResponseWriter, r *http.Request) Result {
	updated, err := h.jobs.RecalculateMetrics()
	if err != nil {
		return InternalError(err, "recalculate metrics: ")
	}

	return Ok(models.RecalculateResponse{Updated: updated})
}

func toKeywordModel(k data.Keyword) models.Keyword {
	return models.Keyword{
		ID:               k.ID,
		Keyword:          k.Keyword,
		SubKeyword:       k.SubKeyword,
		MonthlySearchPC:  k.MonthlySearchPC,
		MonthlySearchMO:  k.MonthlySearchMO,
		MonthlySearch:    k.MonthlySearch,
		Competition:      string(k.Competition),
		MobileRatio:      k.MobileRatio,
		DifficultyScore:  k.DifficultyScore,
		OpportunityScore: k.OpportunityScore,
	}
}
