package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/models"
)

type fakeKeywordStore struct {
	created []string
	nextID  int
}

func (f *fakeKeywordStore) CreateKeyword(keyword data.Keyword) (int, error) {
	f.created = append(f.created, keyword.Keyword)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeKeywordStore) GetKeywords() ([]data.Keyword, error)         { return nil, nil }
func (f *fakeKeywordStore) GetKeywordByID(id int) (*data.Keyword, error) { return nil, nil }
func (f *fakeKeywordStore) UpdateKeyword(keyword data.Keyword) error     { return nil }
func (f *fakeKeywordStore) DeleteKeyword(id int) error                   { return nil }

func TestBulkCreateKeywords_ResponseIncludesSkipped(t *testing.T) {
	store := &fakeKeywordStore{}
	handler := &KeywordHandler{repo: store}

	body := `{"keywords":["캠핑 의자","  ","캠핑 의자","camping chair"]}`
	req := httptest.NewRequest(http.MethodPost, "/keywords/bulk", strings.NewReader(body))

	result := handler.BulkCreateKeywords(httptest.NewRecorder(), req)

	require.Equal(t, http.StatusOK, result.Code)
	res, ok := result.Body.(models.BulkCreateKeywordsResponse)
	require.True(t, ok, "body should be the bulk response, got %T", result.Body)
	assert.Equal(t, []int{1, 2}, res.Created)
	assert.Equal(t, []string{"  ", "캠핑 의자"}, res.Skipped)
	assert.Equal(t, []string{"캠핑 의자", "camping chair"}, store.created)
}

func TestBulkCreateKeywords_EmptyListRejected(t *testing.T) {
	handler := &KeywordHandler{repo: &fakeKeywordStore{}}

	req := httptest.NewRequest(http.MethodPost, "/keywords/bulk", strings.NewReader(`{"keywords":[]}`))
	result := handler.BulkCreateKeywords(httptest.NewRecorder(), req)

	assert.Equal(t, http.StatusBadRequest, result.Code)
}
