package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/widewildonline-ai/serp-tracker-web/batch"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/enums"
	"github.com/widewildonline-ai/serp-tracker-web/metrics"
)

// volumeChunkSize keeps each crawler request small enough that a single
// failure loses at most a handful of keywords.
const volumeChunkSize = 10

// RefreshVolumes fetches current search volumes for every keyword from the
// crawler service, in chunks, and recomputes the derived scores for the
// keywords that changed. Chunk failures are recorded in the report and do not
// abort the rest.
func (s *Service) RefreshVolumes(ctx context.Context) (batch.Report, error) {
	client, err := s.Client()
	if err != nil {
		return batch.Report{}, err
	}

	keywords, err := s.keywordRepo.GetKeywords()
	if err != nil {
		return batch.Report{}, errors.Wrap(err, "refresh volumes: load keywords")
	}

	byText := make(map[string]data.Keyword, len(keywords))
	for _, kw := range keywords {
		byText[strings.ToLower(kw.Keyword)] = kw
	}

	tasks := make([]batch.Task, 0, (len(keywords)+volumeChunkSize-1)/volumeChunkSize)
	for start := 0; start < len(keywords); start += volumeChunkSize {
		end := start + volumeChunkSize
		if end > len(keywords) {
			end = len(keywords)
		}
		chunk := make([]string, 0, end-start)
		for _, kw := range keywords[start:end] {
			chunk = append(chunk, kw.Keyword)
		}

		tasks = append(tasks, batch.Task{
			Name: fmt.Sprintf("volumes[%d:%d]", start, end),
			Run: func(ctx context.Context) error {
				results, err := client.FetchVolumes(ctx, chunk)
				metrics.IncCrawlerCall("volume", err)
				if err != nil {
					return err
				}

				for _, res := range results {
					kw, ok := byText[strings.ToLower(res.Keyword)]
					if !ok {
						continue
					}
					if err := s.applyVolumes(kw, res.PCVolume, res.MOVolume, res.TotalVolume, res.Competition); err != nil {
						s.logger.Error("apply volumes", "keyword", kw.Keyword, "error", err)
					}
				}
				return nil
			},
		})
	}

	report := s.runner.Run(ctx, "volume_refresh", tasks)
	metrics.ObserveBatch(report.Job, report.StartedAt, report.Failed)
	s.notifyJobDone(ctx, report)

	return report, nil
}

func (s *Service) applyVolumes(kw data.Keyword, pc, mo, total int, competition string) error {
	kw.MonthlySearchPC = pc
	kw.MonthlySearchMO = mo
	kw.MonthlySearch = total
	kw.Competition = enums.ParseCompetition(competition)
	if total > 0 {
		kw.MobileRatio = float64(mo) / float64(total)
	} else {
		kw.MobileRatio = 0
	}

	if err := s.keywordRepo.UpdateVolumes(kw); err != nil {
		return err
	}

	return s.recalcKeyword(kw)
}
