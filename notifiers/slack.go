package notifiers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/widewildonline-ai/serp-tracker-web/batch"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/metrics"
)

// Slack delivers messages to a Slack incoming webhook.
type Slack struct {
	client     *http.Client
	webhookURL string
}

func NewSlack(webhookURL string) *Slack {
	return &Slack{
		client:     &http.Client{Timeout: 10 * time.Second},
		webhookURL: webhookURL,
	}
}

// Message is the webhook payload: fallback text plus Block Kit blocks.
type Message struct {
	Text   string           `json:"text"`
	Blocks []map[string]any `json:"blocks,omitempty"`
}

func (s *Slack) Send(ctx context.Context, msg Message) error {
	err := s.send(ctx, msg)
	if err != nil {
		metrics.SlackSends.WithLabelValues("error").Inc()
		return err
	}

	metrics.SlackSends.WithLabelValues("ok").Inc()
	return nil
}

func (s *Slack) send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook status %d", resp.StatusCode)
	}

	return nil
}

// TestMessage is the ping sent from the settings page.
func TestMessage() Message {
	return Message{Text: "serp-tracker: webhook connection test 🎉"}
}

// RankDropMessage builds a digest for SERP captures whose rank fell past the
// alert threshold, one section per keyword.
func RankDropMessage(drops []data.RankDrop) Message {
	byKeyword := make(map[string][]data.RankDrop)
	order := make([]string, 0, len(drops))
	for _, d := range drops {
		if _, seen := byKeyword[d.Keyword]; !seen {
			order = append(order, d.Keyword)
		}
		byKeyword[d.Keyword] = append(byKeyword[d.Keyword], d)
	}

	blocks := []map[string]any{
		{
			"type": "header",
			"text": map[string]any{"type": "plain_text", "text": "📉 Rank drops detected"},
		},
	}
	for _, keyword := range order {
		lines := ""
		for _, d := range byKeyword[keyword] {
			rank := "unranked"
			if d.Rank != nil {
				rank = fmt.Sprintf("#%d", *d.Rank)
			}
			lines += fmt.Sprintf("• <%s|%s> now %s (%+d)\n", d.URL, d.Device, rank, d.RankChange)
		}
		blocks = append(blocks, map[string]any{
			"type": "section",
			"text": map[string]any{"type": "mrkdwn", "text": fmt.Sprintf("*%s*\n%s", keyword, lines)},
		})
	}

	return Message{
		Text:   fmt.Sprintf("serp-tracker: %d rank drops across %d keywords", len(drops), len(order)),
		Blocks: blocks,
	}
}

// JobDoneMessage summarizes a finished batch run.
func JobDoneMessage(report batch.Report) Message {
	status := "✅ completed"
	if report.Cancelled {
		status = "⚠️ cancelled"
	} else if report.Failed > 0 {
		status = "⚠️ completed with failures"
	}

	text := fmt.Sprintf("serp-tracker: %s job %s (%d/%d ok, %d failed)",
		report.Job, status, report.Done, report.Total, report.Failed)

	return Message{
		Text: text,
		Blocks: []map[string]any{
			{
				"type": "section",
				"text": map[string]any{"type": "mrkdwn", "text": text},
			},
		},
	}
}
