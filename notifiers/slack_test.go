package notifiers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/widewildonline-ai/serp-tracker-web/batch"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/enums"
)

func TestSend_PostsJSONPayload(t *testing.T) {
	var got Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	slack := NewSlack(server.URL)
	err := slack.Send(context.Background(), TestMessage())

	require.NoError(t, err)
	assert.Contains(t, got.Text, "webhook connection test")
}

func TestSend_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer server.Close()

	slack := NewSlack(server.URL)
	err := slack.Send(context.Background(), TestMessage())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestRankDropMessage_GroupsByKeyword(t *testing.T) {
	rank := 15
	drops := []data.RankDrop{
		{Keyword: "캠핑 의자", URL: "https://blog.example/1", Device: enums.DevicePC, Rank: &rank, RankChange: -7},
		{Keyword: "캠핑 의자", URL: "https://blog.example/1", Device: enums.DeviceMO, RankChange: -12},
		{Keyword: "텐트", URL: "https://blog.example/2", Device: enums.DevicePC, RankChange: -6},
	}

	msg := RankDropMessage(drops)

	assert.Contains(t, msg.Text, "3 rank drops")
	assert.Contains(t, msg.Text, "2 keywords")
	// header block plus one section per keyword
	require.Len(t, msg.Blocks, 3)
}

func TestJobDoneMessage(t *testing.T) {
	msg := JobDoneMessage(batch.Report{Job: "serp_check", Total: 10, Done: 8, Failed: 2})
	assert.Contains(t, msg.Text, "serp_check")
	assert.Contains(t, msg.Text, "8/10 ok")
	assert.Contains(t, msg.Text, "failures")

	msg = JobDoneMessage(batch.Report{Job: "volume_refresh", Total: 5, Done: 5})
	assert.Contains(t, msg.Text, "✅")
}
