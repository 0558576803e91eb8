package crawler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSerp_InjectsSecret(t *testing.T) {
	var gotHeader string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-API-Secret")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"pc_rank": 3, "mo_rank": nil})
	}))
	defer server.Close()

	client := NewClient(server.URL, "s3cret", nil, 0)
	ranks, err := client.CheckSerp(context.Background(), "캠핑 의자", "https://blog.example/1", 30)

	require.NoError(t, err)
	assert.Equal(t, "s3cret", gotHeader)
	assert.Equal(t, "s3cret", gotBody["secret"])
	assert.Equal(t, "캠핑 의자", gotBody["keyword"])
	assert.Equal(t, float64(30), gotBody["rank_max"])
	require.NotNil(t, ranks.PCRank)
	assert.Equal(t, 3, *ranks.PCRank)
	assert.Nil(t, ranks.MORank)
}

func TestFetchVolumes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/keyword/volume", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"keyword": "kw", "pc_volume": 100, "mo_volume": 400, "total_volume": 500, "competition": "낮음"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "s", nil, 0)
	results, err := client.FetchVolumes(context.Background(), []string{"kw"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 500, results[0].TotalVolume)
	assert.Equal(t, "낮음", results[0].Competition)
}

func TestGetHealth_LockFlags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "rank_locked": true})
	}))
	defer server.Close()

	client := NewClient(server.URL, "s", nil, 0)
	health, err := client.GetHealth(context.Background())

	require.NoError(t, err)
	assert.True(t, health.OK)
	assert.True(t, health.RankLocked)
	assert.False(t, health.VolumeLocked)
}

func TestDo_NonOKStatusSurfacesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "volume job already running", http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL, "s", nil, 0)
	_, err := client.RunVolume(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
	assert.Contains(t, err.Error(), "volume job already running")
}

func TestDo_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, "s", nil, 0)
	_, err := client.GetHealth(ctx)
	require.Error(t, err)
}
