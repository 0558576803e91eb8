package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/widewildonline-ai/serp-tracker-web/data"
)

type fakeSettings struct {
	record any
	err    error
}

func (f fakeSettings) LoadTyped(key string) (any, error) {
	return f.record, f.err
}

func proxyRequest(t *testing.T, handler *ProxyHandler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, "/api/ec2/"+path, strings.NewReader(body))
	req.SetPathValue("path", path)

	rec := httptest.NewRecorder()
	handler.Forward(rec, req)
	return rec
}

func TestForward_MissingConfigFailsBeforeNetwork(t *testing.T) {
	handler := NewProxyHandler(fakeSettings{}, nil)

	rec := proxyRequest(t, handler, http.MethodGet, "health", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var res ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "not configured")
}

func TestForward_GetInjectsHeaderAndPassesBodyThrough(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "topsecret", r.Header.Get("X-API-Secret"))
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	defer remote.Close()

	handler := NewProxyHandler(fakeSettings{record: &data.EC2APISetting{
		BaseURL: remote.URL, Secret: "topsecret",
	}}, nil)

	rec := proxyRequest(t, handler, http.MethodGet, "health", "")

	assert.Equal(t, http.StatusTeapot, rec.Code, "remote status passes through verbatim")
	assert.JSONEq(t, `{"ok":false}`, rec.Body.String())
}

func TestForward_PostInjectsSecretField(t *testing.T) {
	var got map[string]any
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer remote.Close()

	handler := NewProxyHandler(fakeSettings{record: &data.EC2APISetting{
		BaseURL: remote.URL, Secret: "topsecret",
	}}, nil)

	proxyRequest(t, handler, http.MethodPost, "run", `{"mode":"weekly"}`)

	assert.Equal(t, "topsecret", got["secret"])
	assert.Equal(t, "weekly", got["mode"])
}

func TestForward_InvalidPostBodyTreatedAsEmpty(t *testing.T) {
	var got map[string]any
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer remote.Close()

	handler := NewProxyHandler(fakeSettings{record: &data.EC2APISetting{
		BaseURL: remote.URL, Secret: "topsecret",
	}}, nil)

	proxyRequest(t, handler, http.MethodPost, "run", "not json at all")

	assert.Equal(t, map[string]any{"secret": "topsecret"}, got)
}
