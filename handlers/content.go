package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/data/repos"
	"github.com/widewildonline-ai/serp-tracker-web/models"
)

// contentStore is the slice of ContentRepo the handler uses.
type contentStore interface {
	CreateContent(content data.Content) (int, error)
	GetContents() ([]data.Content, error)
	GetContentsByKeywordID(keywordID int) ([]data.Content, error)
	GetContentByID(id int) (*data.Content, error)
	UpdateContent(content data.Content) error
	SetActive(id int, active bool) error
	DeleteContent(id int) error
}

// rankSource supplies the latest capture per content for the listing.
type rankSource interface {
	GetLatestRanks(contentIDs []int) (map[int]data.ContentRanks, error)
}

type ContentHandler struct {
	repo        contentStore
	keywordRepo *repos.KeywordRepo
	ranks       rankSource
}

func NewContentHandler(repo *repos.ContentRepo, keywordRepo *repos.KeywordRepo, ranks *repos.SerpRepo) *ContentHandler {
	return &ContentHandler{repo, keywordRepo, ranks}
}

func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) Result {
	var req models.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		return BadRequest("Content URL is required.")
	}

	keyword, err := h.keywordRepo.GetKeywordByID(req.KeywordID)
	if err != nil {
		return InternalError(err, "create content: get keyword: ")
	}
	if keyword == nil {
		return BadRequest("Keyword does not exist.")
	}

	content := data.Content{
		KeywordID:     req.KeywordID,
		AccountID:     req.AccountID,
		URL:           url,
		Title:         req.Title,
		PublishedDate: req.PublishedDate,
		IsActive:      true,
		CamfitLink:    req.CamfitLink,
		SourceFile:    req.SourceFile,
	}

	id, err := h.repo.CreateContent(content)
	if err != nil {
		if errors.Is(err, repos.ErrDuplicateContent) {
			return BadRequest("This URL is already registered for the keyword.")
		}
		return InternalError(err, "create content: ")
	}

	return Created(id)
}

func (h *ContentHandler) GetContents(w http.ResponseWriter, r *http.Request) Result {
	var (
		contents []data.Content
		err      error
	)

	if keywordIDStr := r.URL.Query().Get("keywordId"); keywordIDStr != "" {
		keywordID, convErr := strconv.Atoi(keywordIDStr)
		if convErr != nil {
			return BadRequest("Invalid keyword ID.")
		}
		contents, err = h.repo.GetContentsByKeywordID(keywordID)
	} else {
		contents, err = h.repo.GetContents()
	}
	if err != nil {
		return InternalError(err, "get contents: ")
	}

	ids := make([]int, 0, len(contents))
	for _, c := range contents {
		ids = append(ids, c.ID)
	}
	latest, err := h.ranks.GetLatestRanks(ids)
	if err != nil {
		return InternalError(err, "get contents: latest ranks: ")
	}

	res := &models.GetContentsResponse{Contents: make([]models.Content, 0, len(contents))}
	for _, c := range contents {
		model := toContentModel(c)
		if ranks, ok := latest[c.ID]; ok {
			model.PCRank = ranks.PCRank
			model.MORank = ranks.MORank
		}
		res.Contents = append(res.Contents, model)
	}

	return Ok(res)
}

func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid content ID.")
	}

	var req models.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		return BadRequest("Content URL is required.")
	}

	existing, err := h.repo.GetContentByID(id)
	if err != nil {
		return InternalError(err, "update content: get content: ")
	}
	if existing == nil {
		return NotFound("Content not found.")
	}

	existing.AccountID = req.AccountID
	existing.URL = url
	existing.Title = req.Title
	existing.PublishedDate = req.PublishedDate
	existing.CamfitLink = req.CamfitLink
	existing.SourceFile = req.SourceFile

	if err := h.repo.UpdateContent(*existing); err != nil {
		return InternalError(err, "update content: ")
	}

	return Ok(nil)
}

func (h *ContentHandler) SetActive(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid content ID.")
	}

	var req models.SetContentActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	if err := h.repo.SetActive(id, req.Active); err != nil {
		return InternalError(err, "set content active: ")
	}

	return Ok(nil)
}

func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid content ID.")
	}

	if err := h.repo.DeleteContent(id); err != nil {
		return InternalError(err, "delete content: ")
	}

	return Ok(nil)
}

func toContentModel(c data.Content) models.Content {
	return models.Content{
		ID:            c.ID,
		KeywordID:     c.KeywordID,
		AccountID:     c.AccountID,
		URL:           c.URL,
		Title:         c.Title,
		PublishedDate: c.PublishedDate,
		IsActive:      c.IsActive,
		CamfitLink:    c.CamfitLink,
		SourceFile:    c.SourceFile,
	}
}
