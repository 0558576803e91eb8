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

type AccountHandler struct {
	repo *repos.AccountRepo
	jobs *jobs.Service
}

func NewAccountHandler(repo *repos.AccountRepo, jobs *jobs.Service) *AccountHandler {
	return &AccountHandler{repo, jobs}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) Result {
	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Account name is required.")
	}

	platform := strings.TrimSpace(req.Platform)
	if platform == "" {
		platform = "naver"
	}

	limit := req.DailyPublishLimit
	if limit < 1 {
		limit = 1
	}

	account := data.Account{
		Name:              name,
		Platform:          platform,
		URL:               req.URL,
		DailyPublishLimit: limit,
	}

	id, err := h.repo.CreateAccount(account)
	if err != nil {
		return InternalError(err, "create account: ")
	}

	return Created(id)
}

func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) Result {
	accounts, err := h.repo.GetAccounts()
	if err != nil {
		return InternalError(err, "get accounts: ")
	}

	res := &models.GetAccountsResponse{Accounts: make([]models.Account, 0, len(accounts))}
	for _, a := range accounts {
		res.Accounts = append(res.Accounts, models.Account{
			ID:                a.ID,
			Name:              a.Name,
			Platform:          a.Platform,
			URL:               a.URL,
			BlogScore:         a.BlogScore,
			DailyPublishLimit: a.DailyPublishLimit,
		})
	}

	return Ok(res)
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid account ID.")
	}

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Account name is required.")
	}

	existing, err := h.repo.GetAccountByID(id)
	if err != nil {
		return InternalError(err, "update account: get account: ")
	}
	if existing == nil {
		return NotFound("Account not found.")
	}

	existing.Name = name
	existing.Platform = strings.TrimSpace(req.Platform)
	existing.URL = req.URL
	existing.DailyPublishLimit = req.DailyPublishLimit

	if err := h.repo.UpdateAccount(*existing); err != nil {
		return InternalError(err, "update account: ")
	}

	return Ok(nil)
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid account ID.")
	}

	if err := h.repo.DeleteAccount(id); err != nil {
		return InternalError(err, "delete account: ")
	}

	return Ok(nil)
}

// RecalculateScores runs the blog score estimator over every account and
// overwrites the stored scores.
func (h *AccountHandler) RecalculateScores(w http.ResponseWriter, r *http.Request) Result {
	scores, err := h.jobs.RecalculateBlogScores()
	if err != nil {
		return InternalError(err, "recalculate blog scores: ")
	}

	return Ok(map[string]interface{}{"accounts": scores})
}
