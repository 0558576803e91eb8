package models

type CreateKeywordRequest struct {
	Keyword    string  `json:"keyword"`
	SubKeyword *string `json:"subKeyword"`
}

type BulkCreateKeywordsRequest struct {
	Keywords []string `json:"keywords"`
}

type BulkCreateKeywordsResponse struct {
	Created []int    `json:"created"`
	Skipped []string `json:"skipped"`
}

type UpdateKeywordRequest struct {
	Keyword    string  `json:"keyword"`
	SubKeyword *string `json:"subKeyword"`
}

type Keyword struct {
	ID               int     `json:"id"`
	Keyword          string  `json:"keyword"`
	SubKeyword       *string `json:"subKeyword"`
	MonthlySearchPC  int     `json:"monthlySearchPc"`
	MonthlySearchMO  int     `json:"monthlySearchMo"`
	MonthlySearch    int     `json:"monthlySearchTotal"`
	Competition      string  `json:"competition"`
	MobileRatio      float64 `json:"mobileRatio"`
	DifficultyScore  int     `json:"difficultyScore"`
	OpportunityScore int     `json:"opportunityScore"`
}

type GetKeywordsResponse struct {
	Keywords []Keyword `json:"keywords"`
}

type RecalculateResponse struct {
	Updated int `json:"updated"`
}
