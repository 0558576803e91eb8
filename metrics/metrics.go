package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	BatchRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "serptracker_batch_runs_total",
		Help: "Total batch job runs",
	}, []string{"job"})
	BatchItemFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "serptracker_batch_item_failures_total",
		Help: "Total failed items inside batch jobs",
	}, []string{"job"})
	BatchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "serptracker_batch_duration_seconds",
		Help:    "Batch job duration seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	CrawlerCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "serptracker_crawler_calls_total",
		Help: "Total calls to the remote crawler service",
	}, []string{"endpoint", "outcome"})
	SlackSends = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "serptracker_slack_sends_total",
		Help: "Total Slack webhook deliveries",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(BatchRuns, BatchItemFailures, BatchDuration, CrawlerCalls, SlackSends)
}

// ObserveBatch records one finished batch run.
func ObserveBatch(job string, start time.Time, failed int) {
	BatchRuns.WithLabelValues(job).Inc()
	BatchItemFailures.WithLabelValues(job).Add(float64(failed))
	BatchDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())
}

// IncCrawlerCall counts one remote call by endpoint and outcome ("ok"/"error").
func IncCrawlerCall(endpoint string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	CrawlerCalls.WithLabelValues(endpoint, outcome).Inc()
}
