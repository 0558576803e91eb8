package jobs

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/widewildonline-ai/serp-tracker-web/batch"
	"github.com/widewildonline-ai/serp-tracker-web/metrics"
)

// AnalyzeBlogs asks the crawler service to analyze each active content URL
// and backfills the keyword's sub-keyword from the result. Keywords that
// already have a sub-keyword are left alone.
func (s *Service) AnalyzeBlogs(ctx context.Context) (batch.Report, error) {
	client, err := s.Client()
	if err != nil {
		return batch.Report{}, err
	}

	contents, err := s.contentRepo.GetActiveContents()
	if err != nil {
		return batch.Report{}, errors.Wrap(err, "analyze blogs: load contents")
	}

	tasks := make([]batch.Task, 0, len(contents))
	for _, content := range contents {
		tasks = append(tasks, batch.Task{
			Name: fmt.Sprintf("content:%d", content.ID),
			Run: func(ctx context.Context) error {
				keyword, err := s.keywordRepo.GetKeywordByID(content.KeywordID)
				if err != nil {
					return err
				}
				if keyword == nil || (keyword.SubKeyword != nil && *keyword.SubKeyword != "") {
					return nil
				}

				analysis, err := client.AnalyzeBlog(ctx, content.URL)
				metrics.IncCrawlerCall("analyze", err)
				if err != nil {
					return err
				}
				if analysis.SubKeyword == "" {
					return nil
				}

				keyword.SubKeyword = &analysis.SubKeyword
				return s.keywordRepo.UpdateKeyword(*keyword)
			},
		})
	}

	report := s.runner.Run(ctx, "blog_analyze", tasks)
	metrics.ObserveBatch(report.Job, report.StartedAt, report.Failed)
	s.notifyJobDone(ctx, report)

	return report, nil
}
