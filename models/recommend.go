package models

type RecommendedAccount struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	BlogScore int    `json:"blogScore"`
}

type Recommendation struct {
	KeywordID           int                 `json:"keywordId"`
	Keyword             string              `json:"keyword"`
	Status              string              `json:"status"`
	MonthlySearch       int                 `json:"monthlySearchTotal"`
	Competition         string              `json:"competition"`
	Account             *RecommendedAccount `json:"account"`
	ExposureProbability float64             `json:"exposureProbability"`
	ExpectedImpact      int                 `json:"expectedImpact"`
}

type GetRecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}
