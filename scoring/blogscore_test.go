package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlogScore_NoKeywords(t *testing.T) {
	_, ok := BlogScore(nil, DefaultWeights())
	assert.False(t, ok, "accounts without keywords are skipped")
}

func TestBlogScore_AllExposedRankOne(t *testing.T) {
	opp := 100
	signals := []KeywordSignal{
		{PCRank: intp(1), Opportunity: &opp},
		{MORank: intp(1), Opportunity: &opp},
	}

	score, ok := BlogScore(signals, DefaultWeights())
	assert.True(t, ok)
	// exposure 100*0.4 + rank 100*0.3 + quality 100*0.3
	assert.Equal(t, 100, score)
}

func TestBlogScore_NoneExposed(t *testing.T) {
	signals := []KeywordSignal{{}, {}}

	score, ok := BlogScore(signals, DefaultWeights())
	assert.True(t, ok)
	// exposure 0, rank 0, quality defaults to 50: 50*0.3 = 15
	assert.Equal(t, 15, score)
}

func TestBlogScore_BestRankPicksLower(t *testing.T) {
	s := KeywordSignal{PCRank: intp(8), MORank: intp(3)}
	assert.Equal(t, 3, *s.BestRank())

	s = KeywordSignal{PCRank: intp(2)}
	assert.Equal(t, 2, *s.BestRank())

	s = KeywordSignal{}
	assert.Nil(t, s.BestRank())
}

func TestBlogScore_AlwaysInRange(t *testing.T) {
	deep := 1000
	mixes := [][]KeywordSignal{
		{{PCRank: intp(1), Opportunity: intp(200)}},
		{{PCRank: &deep}},
		{{}, {}, {PCRank: intp(50)}},
		{{MORank: intp(1)}, {}, {PCRank: intp(3), Opportunity: intp(0)}},
	}

	for _, signals := range mixes {
		score, ok := BlogScore(signals, DefaultWeights())
		assert.True(t, ok)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestBlogScore_CustomWeights(t *testing.T) {
	signals := []KeywordSignal{{PCRank: intp(1), Opportunity: intp(0)}}

	// all weight on exposure: fully exposed account scores 100
	score, ok := BlogScore(signals, Weights{Exposure: 100, Rank: 0, Quality: 0})
	assert.True(t, ok)
	assert.Equal(t, 100, score)

	// all weight on quality: opportunity 0 scores 0
	score, ok = BlogScore(signals, Weights{Exposure: 0, Rank: 0, Quality: 100})
	assert.True(t, ok)
	assert.Equal(t, 0, score)
}
