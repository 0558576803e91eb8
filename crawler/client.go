// Package crawler talks to the remote crawler/analysis server. The server
// owns SERP scraping, keyword volume lookup, and blog content analysis; this
// side only consumes its JSON API.
package crawler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const secretHeader = "X-API-Secret"

type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a crawler client. minInterval spaces out consecutive calls
// as a politeness measure towards the crawler host; zero disables pacing.
func NewClient(baseURL, secret string, httpClient *http.Client, minInterval time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

type VolumeResult struct {
	Keyword     string `json:"keyword"`
	PCVolume    int    `json:"pc_volume"`
	MOVolume    int    `json:"mo_volume"`
	TotalVolume int    `json:"total_volume"`
	Competition string `json:"competition"`
}

type SerpRanks struct {
	PCRank *int `json:"pc_rank"`
	MORank *int `json:"mo_rank"`
}

type BlogAnalysis struct {
	MainKeyword string `json:"main_keyword"`
	SubKeyword  string `json:"sub_keyword"`
}

// Health reports the crawler's advisory job-lock flags. They are UI state
// only; nothing here enforces them.
type Health struct {
	OK             bool `json:"ok"`
	RankLocked     bool `json:"rank_locked"`
	VolumeLocked   bool `json:"volume_locked"`
	AnalysisLocked bool `json:"analysis_locked"`
}

type RunResult struct {
	OK  bool `json:"ok"`
	PID int  `json:"pid"`
}

func (c *Client) FetchVolumes(ctx context.Context, keywords []string) ([]VolumeResult, error) {
	var res struct {
		Results []VolumeResult `json:"results"`
	}
	body := map[string]any{"secret": c.secret, "keywords": keywords}
	if err := c.post(ctx, "/api/keyword/volume", body, &res); err != nil {
		return nil, err
	}

	return res.Results, nil
}

func (c *Client) CheckSerp(ctx context.Context, keyword, url string, rankMax int) (SerpRanks, error) {
	var ranks SerpRanks
	body := map[string]any{"secret": c.secret, "keyword": keyword, "url": url, "rank_max": rankMax}
	err := c.post(ctx, "/api/serp/check", body, &ranks)
	return ranks, err
}

func (c *Client) AnalyzeBlog(ctx context.Context, url string) (BlogAnalysis, error) {
	var analysis BlogAnalysis
	body := map[string]any{"secret": c.secret, "url": url}
	err := c.post(ctx, "/api/blog/analyze", body, &analysis)
	return analysis, err
}

func (c *Client) GetHealth(ctx context.Context) (Health, error) {
	var health Health
	err := c.get(ctx, "/health", &health)
	return health, err
}

// RunRank kicks off the crawler's asynchronous rank-check job. The job runs
// out of process; the returned pid is informational only.
func (c *Client) RunRank(ctx context.Context, mode string) (RunResult, error) {
	body := map[string]any{"secret": c.secret}
	if mode != "" {
		body["mode"] = mode
	}

	var res RunResult
	err := c.post(ctx, "/run", body, &res)
	return res, err
}

func (c *Client) RunVolume(ctx context.Context) (RunResult, error) {
	var res RunResult
	err := c.post(ctx, "/run-volume", map[string]any{"secret": c.secret}, &res)
	return res, err
}

func (c *Client) RunAnalysis(ctx context.Context) (RunResult, error) {
	var res RunResult
	err := c.post(ctx, "/run-analysis", map[string]any{"secret": c.secret}, &res)
	return res, err
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}

	req.Header.Set(secretHeader, c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		msg := string(body)
		if len(msg) > 300 {
			msg = msg[:300] + "..."
		}
		return fmt.Errorf("crawler returned status %d: %s", resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}

	return nil
}
