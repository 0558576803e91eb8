// Package jobs implements the operations behind the dashboard buttons:
// batch volume refresh, SERP checks, blog analysis, and the score
// recalculations. Remote calls go through the crawler client; batches run on
// the sequential runner so partial results survive failures and cancellation.
package jobs

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/widewildonline-ai/serp-tracker-web/batch"
	"github.com/widewildonline-ai/serp-tracker-web/crawler"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/data/repos"
	"github.com/widewildonline-ai/serp-tracker-web/notifiers"
)

// ErrNoCrawlerConfig is returned before any network call when the ec2_api
// settings row is missing.
var ErrNoCrawlerConfig = errors.New("crawler API is not configured")

type Service struct {
	logger      *slog.Logger
	httpClient  *http.Client
	runner      *batch.Runner
	accountRepo *repos.AccountRepo
	keywordRepo *repos.KeywordRepo
	contentRepo *repos.ContentRepo
	serpRepo    *repos.SerpRepo
	settingRepo *repos.SettingRepo
}

func NewService(
	logger *slog.Logger,
	httpClient *http.Client,
	runner *batch.Runner,
	accountRepo *repos.AccountRepo,
	keywordRepo *repos.KeywordRepo,
	contentRepo *repos.ContentRepo,
	serpRepo *repos.SerpRepo,
	settingRepo *repos.SettingRepo,
) *Service {
	return &Service{
		logger:      logger,
		httpClient:  httpClient,
		runner:      runner,
		accountRepo: accountRepo,
		keywordRepo: keywordRepo,
		contentRepo: contentRepo,
		serpRepo:    serpRepo,
		settingRepo: settingRepo,
	}
}

// Client builds a crawler client from the stored ec2_api settings. Fails with
// ErrNoCrawlerConfig when the row was never saved.
func (s *Service) Client() (*crawler.Client, error) {
	record, err := s.settingRepo.LoadTyped(data.SettingEC2API)
	if err != nil {
		return nil, errors.Wrap(err, "load ec2 settings")
	}
	if record == nil {
		return nil, ErrNoCrawlerConfig
	}

	cfg := record.(*data.EC2APISetting)
	return crawler.NewClient(cfg.BaseURL, cfg.Secret, s.httpClient, 2*time.Second), nil
}

func (s *Service) serpTracking() data.SerpTrackingSetting {
	record, err := s.settingRepo.LoadTyped(data.SettingSerpTracking)
	if err != nil || record == nil {
		if err != nil {
			s.logger.Error("load serp tracking settings", "error", err)
		}
		return data.SerpTrackingSetting{RankMax: 30, SearchSleepMin: 2, SearchSleepMax: 4}
	}
	return *record.(*data.SerpTrackingSetting)
}

func (s *Service) slackSetting() *data.SlackWebhookSetting {
	record, err := s.settingRepo.LoadTyped(data.SettingSlackWebhook)
	if err != nil || record == nil {
		if err != nil {
			s.logger.Error("load slack settings", "error", err)
		}
		return nil
	}
	return record.(*data.SlackWebhookSetting)
}

func (s *Service) notifyJobDone(ctx context.Context, report batch.Report) {
	cfg := s.slackSetting()
	if cfg == nil || !cfg.Enabled || !cfg.NotifyJobDone {
		return
	}

	slack := notifiers.NewSlack(cfg.WebhookURL)
	if err := slack.Send(ctx, notifiers.JobDoneMessage(report)); err != nil {
		s.logger.Error("send job done notification", "job", report.Job, "error", err)
	}
}
