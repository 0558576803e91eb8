package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/data/repos"
	"github.com/widewildonline-ai/serp-tracker-web/notifiers"
)

// Notifier watches for SERP captures whose rank dropped past the configured
// threshold and pushes a Slack digest, then marks the rows notified so each
// drop alerts once.
type Notifier struct {
	serpRepo    *repos.SerpRepo
	settingRepo *repos.SettingRepo
}

func NewNotifier(serpRepo *repos.SerpRepo, settingRepo *repos.SettingRepo) *Notifier {
	return &Notifier{
		serpRepo:    serpRepo,
		settingRepo: settingRepo,
	}
}

func (n *Notifier) Start(ctx context.Context) {
	if err := n.notifyDrops(ctx); err != nil {
		slog.Error("notify rank drops:", "error", err)
	}

	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := n.notifyDrops(ctx); err != nil {
				slog.Error("notify rank drops:", "error", err)
			}
		}
	}
}

func (n *Notifier) notifyDrops(ctx context.Context) error {
	record, err := n.settingRepo.LoadTyped(data.SettingSlackWebhook)
	if err != nil {
		return errors.Wrap(err, "notify rank drops: load slack settings")
	}
	if record == nil {
		return nil
	}
	cfg := record.(*data.SlackWebhookSetting)
	if !cfg.Enabled || !cfg.NotifyRankDrop {
		return nil
	}

	threshold := cfg.RankDropThreshold
	if threshold <= 0 {
		threshold = 5
	}

	drops, err := n.serpRepo.GetUnnotifiedDrops(threshold)
	if err != nil {
		return errors.Wrap(err, "notify rank drops: get unnotified drops")
	}
	if len(drops) == 0 {
		return nil
	}

	slack := notifiers.NewSlack(cfg.WebhookURL)
	if err := slack.Send(ctx, notifiers.RankDropMessage(drops)); err != nil {
		return errors.Wrap(err, "notify rank drops: send digest")
	}

	ids := make([]int64, 0, len(drops))
	for _, drop := range drops {
		ids = append(ids, int64(drop.ID))
	}
	if err := n.serpRepo.MarkNotified(ids, time.Now()); err != nil {
		return errors.Wrap(err, "notify rank drops: mark notified")
	}

	slog.Info("sent rank drop digest", "drops", len(drops))
	return nil
}
