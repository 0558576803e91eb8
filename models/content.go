package models

import "time"

type CreateContentRequest struct {
	KeywordID     int        `json:"keywordId"`
	AccountID     *int       `json:"accountId"`
	URL           string     `json:"url"`
	Title         *string    `json:"title"`
	PublishedDate *time.Time `json:"publishedDate"`
	CamfitLink    bool       `json:"camfitLink"`
	SourceFile    *string    `json:"sourceFile"`
}

type UpdateContentRequest struct {
	AccountID     *int       `json:"accountId"`
	URL           string     `json:"url"`
	Title         *string    `json:"title"`
	PublishedDate *time.Time `json:"publishedDate"`
	CamfitLink    bool       `json:"camfitLink"`
	SourceFile    *string    `json:"sourceFile"`
}

type SetContentActiveRequest struct {
	Active bool `json:"active"`
}

type Content struct {
	ID            int        `json:"id"`
	KeywordID     int        `json:"keywordId"`
	AccountID     *int       `json:"accountId"`
	URL           string     `json:"url"`
	Title         *string    `json:"title"`
	PublishedDate *time.Time `json:"publishedDate"`
	IsActive      bool       `json:"isActive"`
	CamfitLink    bool       `json:"camfitLink"`
	SourceFile    *string    `json:"sourceFile"`
	PCRank        *int       `json:"pcRank"`
	MORank        *int       `json:"moRank"`
}

type GetContentsResponse struct {
	Contents []Content `json:"contents"`
}
