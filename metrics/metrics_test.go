package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)

	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestObserveBatch(t *testing.T) {
	before := counterValue(t, BatchRuns, "serp_check")
	failuresBefore := counterValue(t, BatchItemFailures, "serp_check")

	ObserveBatch("serp_check", time.Now(), 3)

	assert.Equal(t, before+1, counterValue(t, BatchRuns, "serp_check"))
	assert.Equal(t, failuresBefore+3, counterValue(t, BatchItemFailures, "serp_check"))
}

func TestIncCrawlerCall_Outcomes(t *testing.T) {
	okBefore := counterValue(t, CrawlerCalls, "serp", "ok")
	errBefore := counterValue(t, CrawlerCalls, "serp", "error")

	IncCrawlerCall("serp", nil)
	IncCrawlerCall("serp", errors.New("boom"))

	assert.Equal(t, okBefore+1, counterValue(t, CrawlerCalls, "serp", "ok"))
	assert.Equal(t, errBefore+1, counterValue(t, CrawlerCalls, "serp", "error"))
}
