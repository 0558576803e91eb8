// Package batch runs sequential best-effort task lists: concurrency is fixed
// at one, tasks are paced by a rate limiter instead of ad hoc sleeps, and the
// outcome of every item is reported back to the caller rather than lost in
// logs. Cancelling the context stops the run between tasks; completed items
// stay in the report.
package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

type ItemResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type Report struct {
	ID         uuid.UUID    `json:"id"`
	Job        string       `json:"job"`
	Total      int          `json:"total"`
	Done       int          `json:"done"`
	Failed     int          `json:"failed"`
	Cancelled  bool         `json:"cancelled"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt time.Time    `json:"finishedAt"`
	Items      []ItemResult `json:"items"`
}

type Runner struct {
	logger *slog.Logger
	delay  time.Duration
}

// NewRunner creates a runner that leaves at least delay between consecutive
// tasks.
func NewRunner(logger *slog.Logger, delay time.Duration) *Runner {
	return &Runner{logger: logger, delay: delay}
}

// Run executes the tasks in order. A failing task is recorded and skipped,
// never aborting the rest of the batch.
func (r *Runner) Run(ctx context.Context, job string, tasks []Task) Report {
	report := Report{
		ID:        uuid.New(),
		Job:       job,
		Total:     len(tasks),
		StartedAt: time.Now(),
		Items:     make([]ItemResult, 0, len(tasks)),
	}

	limit := rate.Inf
	if r.delay > 0 {
		limit = rate.Every(r.delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	for _, task := range tasks {
		if err := limiter.Wait(ctx); err != nil {
			report.Cancelled = true
			r.logger.Info("batch cancelled", "job", job, "done", report.Done, "remaining", report.Total-len(report.Items))
			break
		}

		if err := task.Run(ctx); err != nil {
			report.Failed++
			report.Items = append(report.Items, ItemResult{Name: task.Name, Error: err.Error()})
			r.logger.Error("batch item failed", "job", job, "item", task.Name, "error", err)
			continue
		}

		report.Done++
		report.Items = append(report.Items, ItemResult{Name: task.Name, OK: true})
	}

	report.FinishedAt = time.Now()
	r.logger.Info("batch finished", "job", job,
		"total", report.Total, "done", report.Done, "failed", report.Failed, "cancelled", report.Cancelled)

	return report
}
