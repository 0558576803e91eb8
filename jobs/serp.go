package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/widewildonline-ai/serp-tracker-web/batch"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/enums"
	"github.com/widewildonline-ai/serp-tracker-web/metrics"
	"github.com/widewildonline-ai/serp-tracker-web/scoring"
)

// CheckSerps runs a rank check against every active content item and stores
// the day's capture per device. A re-run on the same day overwrites that
// day's rows. Content with no rank left on either device is deactivated.
func (s *Service) CheckSerps(ctx context.Context) (batch.Report, error) {
	client, err := s.Client()
	if err != nil {
		return batch.Report{}, err
	}

	contents, err := s.contentRepo.GetActiveContents()
	if err != nil {
		return batch.Report{}, errors.Wrap(err, "check serps: load contents")
	}

	tracking := s.serpTracking()
	today := time.Now().Truncate(24 * time.Hour)

	tasks := make([]batch.Task, 0, len(contents))
	for _, content := range contents {
		tasks = append(tasks, batch.Task{
			Name: fmt.Sprintf("content:%d", content.ID),
			Run: func(ctx context.Context) error {
				keyword, err := s.keywordRepo.GetKeywordByID(content.KeywordID)
				if err != nil {
					return err
				}
				if keyword == nil {
					return fmt.Errorf("keyword %d not found", content.KeywordID)
				}

				ranks, err := client.CheckSerp(ctx, keyword.Keyword, content.URL, tracking.RankMax)
				metrics.IncCrawlerCall("serp", err)
				if err != nil {
					return err
				}

				return s.storeCapture(content, ranks.PCRank, ranks.MORank, today)
			},
		})
	}

	report := s.runner.Run(ctx, "serp_check", tasks)
	metrics.ObserveBatch(report.Job, report.StartedAt, report.Failed)
	s.notifyJobDone(ctx, report)

	return report, nil
}

func (s *Service) storeCapture(content data.Content, pcRank, moRank *int, capturedAt time.Time) error {
	ranks := map[enums.Device]*int{
		enums.DevicePC: pcRank,
		enums.DeviceMO: moRank,
	}

	for _, device := range enums.Devices {
		rank := ranks[device]
		prev, err := s.serpRepo.GetPreviousRank(content.ID, device, capturedAt)
		if err != nil {
			return err
		}

		result := data.SerpResult{
			ContentID:  content.ID,
			Device:     device,
			Rank:       rank,
			RankChange: scoring.Delta(prev, rank),
			IsExposed:  rank != nil,
			CapturedAt: capturedAt,
		}
		if err := s.serpRepo.UpsertResult(result); err != nil {
			return err
		}
	}

	// Both devices unranked means the content dropped out of the tracked
	// window entirely; stop tracking it.
	if pcRank == nil && moRank == nil {
		if err := s.contentRepo.SetActive(content.ID, false); err != nil {
			return err
		}
		s.logger.Info("content deactivated, no rank on either device", "content_id", content.ID)
	}

	return nil
}
