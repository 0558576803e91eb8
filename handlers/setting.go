package handlers

import (
	"io"
	"net/http"

	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/data/repos"
	"github.com/widewildonline-ai/serp-tracker-web/models"
	"github.com/widewildonline-ai/serp-tracker-web/notifiers"
)

type SettingHandler struct {
	repo *repos.SettingRepo
}

func NewSettingHandler(repo *repos.SettingRepo) *SettingHandler {
	return &SettingHandler{repo}
}

func (h *SettingHandler) GetSetting(w http.ResponseWriter, r *http.Request) Result {
	key := r.PathValue("key")

	setting, err := h.repo.GetSetting(key)
	if err != nil {
		return InternalError(err, "get setting: ")
	}
	if setting == nil {
		return NotFound("Setting not found.")
	}

	return Ok(models.Setting{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	})
}

// UpdateSetting validates the body against the key's typed record before
// saving; an invalid blob (e.g. blog score weights not summing to 100) is
// rejected and never stored.
func (h *SettingHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) Result {
	key := r.PathValue("key")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return BadRequest("Invalid request.")
	}

	if _, err := data.DecodeSetting(key, body); err != nil {
		return BadRequest(err.Error())
	}

	if err := h.repo.UpsertSetting(key, body); err != nil {
		return InternalError(err, "update setting: ")
	}

	return Ok(nil)
}

// TestSlack sends a ping to the configured webhook so the settings page can
// verify the URL.
func (h *SettingHandler) TestSlack(w http.ResponseWriter, r *http.Request) Result {
	record, err := h.repo.LoadTyped(data.SettingSlackWebhook)
	if err != nil {
		return InternalError(err, "test slack: load settings: ")
	}
	if record == nil {
		return BadRequest("Slack webhook is not configured.")
	}

	cfg := record.(*data.SlackWebhookSetting)
	if cfg.WebhookURL == "" {
		return BadRequest("Slack webhook URL is empty.")
	}

	slack := notifiers.NewSlack(cfg.WebhookURL)
	if err := slack.Send(r.Context(), notifiers.TestMessage()); err != nil {
		return RemoteError(err)
	}

	return Ok(map[string]bool{"ok": true})
}
