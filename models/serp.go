package models

import "time"

type SerpResult struct {
	ID         int       `json:"id"`
	ContentID  int       `json:"contentId"`
	Device     string    `json:"device"`
	Rank       *int      `json:"rank"`
	RankChange int       `json:"rankChange"`
	IsExposed  bool      `json:"isExposed"`
	CapturedAt time.Time `json:"capturedAt"`
}

type GetSerpHistoryResponse struct {
	KeywordID int          `json:"keywordId"`
	Results   []SerpResult `json:"results"`
}
