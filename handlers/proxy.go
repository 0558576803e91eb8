package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/widewildonline-ai/serp-tracker-web/data"
)

// settingSource is the slice of SettingRepo the proxy needs.
type settingSource interface {
	LoadTyped(key string) (any, error)
}

// ProxyHandler forwards arbitrary sub-paths to the crawler service, injecting
// the shared secret. Bodies and status codes pass through verbatim, so it
// sits outside the Result pattern and writes the response itself.
type ProxyHandler struct {
	repo   settingSource
	client *http.Client
}

func NewProxyHandler(repo settingSource, client *http.Client) *ProxyHandler {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &ProxyHandler{repo, client}
}

func (h *ProxyHandler) Forward(w http.ResponseWriter, r *http.Request) {
	record, err := h.repo.LoadTyped(data.SettingEC2API)
	if err != nil {
		writeProxyError(w, "failed to load crawler settings")
		return
	}
	if record == nil {
		writeProxyError(w, "crawler API is not configured")
		return
	}
	cfg := record.(*data.EC2APISetting)

	target := strings.TrimRight(cfg.BaseURL, "/") + "/" + r.PathValue("path")
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	var body io.Reader
	if r.Method == http.MethodPost {
		// Inject the secret as a body field; an unparseable body is treated
		// as empty rather than failing the call.
		payload := map[string]any{}
		if raw, err := io.ReadAll(r.Body); err == nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, &payload); err != nil {
				payload = map[string]any{}
			}
		}
		payload["secret"] = cfg.Secret

		encoded, err := json.Marshal(payload)
		if err != nil {
			writeProxyError(w, "failed to encode request body")
			return
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, body)
	if err != nil {
		writeProxyError(w, err.Error())
		return
	}
	req.Header.Set("X-API-Secret", cfg.Secret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		writeProxyError(w, err.Error())
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		slog.Error("copy proxy response", "error", err)
	}
}

func writeProxyError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(ErrorResponse{message})
}
