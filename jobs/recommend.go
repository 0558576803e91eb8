package jobs

import (
	"github.com/pkg/errors"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/scoring"
)

// BuildRecommendations assembles the current snapshot of keywords, content,
// latest ranks, and accounts and runs the classifier over it.
func (s *Service) BuildRecommendations() ([]scoring.Recommendation, error) {
	keywords, err := s.keywordRepo.GetKeywords()
	if err != nil {
		return nil, errors.Wrap(err, "recommendations: load keywords")
	}

	contents, err := s.contentRepo.GetContents()
	if err != nil {
		return nil, errors.Wrap(err, "recommendations: load contents")
	}

	ids := make([]int, 0, len(contents))
	for _, c := range contents {
		ids = append(ids, c.ID)
	}
	latest, err := s.serpRepo.GetLatestRanks(ids)
	if err != nil {
		return nil, errors.Wrap(err, "recommendations: load latest ranks")
	}

	byKeyword := make(map[int][]scoring.ContentState)
	for _, c := range contents {
		byKeyword[c.KeywordID] = append(byKeyword[c.KeywordID], scoring.ContentState{
			AccountID: c.AccountID,
			Active:    c.IsActive,
			Exposed:   latest[c.ID].BestRank() != nil,
		})
	}

	states := make([]scoring.KeywordState, 0, len(keywords))
	for _, kw := range keywords {
		states = append(states, scoring.KeywordState{
			ID:          kw.ID,
			Keyword:     kw.Keyword,
			Volume:      kw.MonthlySearch,
			Competition: kw.Competition,
			Contents:    byKeyword[kw.ID],
		})
	}

	accounts, err := s.accountRepo.GetAccounts()
	if err != nil {
		return nil, errors.Wrap(err, "recommendations: load accounts")
	}
	infos := make([]scoring.AccountInfo, 0, len(accounts))
	for _, a := range accounts {
		infos = append(infos, scoring.AccountInfo{ID: a.ID, Name: a.Name, BlogScore: a.BlogScore})
	}

	cfg := scoring.RecommendConfig{HighTierThreshold: 70, MediumTierThreshold: 40}
	if record, err := s.settingRepo.LoadTyped(data.SettingDailyPublishLimits); err == nil && record != nil {
		limits := record.(*data.DailyPublishLimitsSetting)
		cfg.HighTierThreshold = limits.HighTierThreshold
		cfg.MediumTierThreshold = limits.MediumTierThreshold
	}

	return scoring.Recommend(states, infos, cfg), nil
}
