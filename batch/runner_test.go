package batch

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRun_AllSucceed(t *testing.T) {
	runner := NewRunner(discardLogger(), 0)

	order := make([]string, 0, 3)
	tasks := []Task{
		{Name: "a", Run: func(ctx context.Context) error { order = append(order, "a"); return nil }},
		{Name: "b", Run: func(ctx context.Context) error { order = append(order, "b"); return nil }},
		{Name: "c", Run: func(ctx context.Context) error { order = append(order, "c"); return nil }},
	}

	report := runner.Run(context.Background(), "test", tasks)

	assert.Equal(t, []string{"a", "b", "c"}, order, "tasks run strictly in order")
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Done)
	assert.Equal(t, 0, report.Failed)
	assert.False(t, report.Cancelled)
}

func TestRun_FailureDoesNotAbortBatch(t *testing.T) {
	runner := NewRunner(discardLogger(), 0)

	tasks := []Task{
		{Name: "ok1", Run: func(ctx context.Context) error { return nil }},
		{Name: "bad", Run: func(ctx context.Context) error { return errors.New("remote returned 503") }},
		{Name: "ok2", Run: func(ctx context.Context) error { return nil }},
	}

	report := runner.Run(context.Background(), "test", tasks)

	assert.Equal(t, 2, report.Done)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Items, 3)
	assert.True(t, report.Items[0].OK)
	assert.False(t, report.Items[1].OK)
	assert.Contains(t, report.Items[1].Error, "503")
	assert.True(t, report.Items[2].OK)
}

func TestRun_CancelKeepsPartialResults(t *testing.T) {
	runner := NewRunner(discardLogger(), 0)
	ctx, cancel := context.WithCancel(context.Background())

	tasks := []Task{
		{Name: "first", Run: func(ctx context.Context) error { cancel(); return nil }},
		{Name: "never", Run: func(ctx context.Context) error { t.Fatal("should not run"); return nil }},
	}

	report := runner.Run(ctx, "test", tasks)

	assert.True(t, report.Cancelled)
	assert.Equal(t, 1, report.Done)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "first", report.Items[0].Name)
}

func TestRun_EmptyBatch(t *testing.T) {
	runner := NewRunner(discardLogger(), 0)
	report := runner.Run(context.Background(), "test", nil)

	assert.Equal(t, 0, report.Total)
	assert.False(t, report.Cancelled)
	assert.Empty(t, report.Items)
}
