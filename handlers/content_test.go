package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/models"
)

type fakeContentStore struct {
	contents []data.Content
}

func (f *fakeContentStore) CreateContent(content data.Content) (int, error) { return 0, nil }
func (f *fakeContentStore) GetContents() ([]data.Content, error)            { return f.contents, nil }
func (f *fakeContentStore) GetContentsByKeywordID(keywordID int) ([]data.Content, error) {
	return f.contents, nil
}
func (f *fakeContentStore) GetContentByID(id int) (*data.Content, error) { return nil, nil }
func (f *fakeContentStore) UpdateContent(content data.Content) error     { return nil }
func (f *fakeContentStore) SetActive(id int, active bool) error          { return nil }
func (f *fakeContentStore) DeleteContent(id int) error                   { return nil }

type fakeRankSource struct {
	ranks   map[int]data.ContentRanks
	askedID []int
}

func (f *fakeRankSource) GetLatestRanks(contentIDs []int) (map[int]data.ContentRanks, error) {
	f.askedID = contentIDs
	return f.ranks, nil
}

func TestGetContents_IncludesLatestRanks(t *testing.T) {
	pc, mo := 3, 12
	store := &fakeContentStore{contents: []data.Content{
		{ID: 1, KeywordID: 7, URL: "https://blog.naver.com/a/1"},
		{ID: 2, KeywordID: 7, URL: "https://blog.naver.com/b/2"},
	}}
	ranks := &fakeRankSource{ranks: map[int]data.ContentRanks{
		1: {ContentID: 1, PCRank: &pc, MORank: &mo},
	}}
	handler := &ContentHandler{repo: store, ranks: ranks}

	req := httptest.NewRequest(http.MethodGet, "/contents", nil)
	result := handler.GetContents(httptest.NewRecorder(), req)

	require.Equal(t, http.StatusOK, result.Code)
	res, ok := result.Body.(*models.GetContentsResponse)
	require.True(t, ok, "body should be the contents response, got %T", result.Body)
	require.Len(t, res.Contents, 2)

	assert.Equal(t, []int{1, 2}, ranks.askedID)
	require.NotNil(t, res.Contents[0].PCRank)
	assert.Equal(t, 3, *res.Contents[0].PCRank)
	require.NotNil(t, res.Contents[0].MORank)
	assert.Equal(t, 12, *res.Contents[0].MORank)

	// content 2 has never been captured
	assert.Nil(t, res.Contents[1].PCRank)
	assert.Nil(t, res.Contents[1].MORank)
}
