package jobs

import (
	"github.com/pkg/errors"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/scoring"
)

// recalcKeyword recomputes a keyword's opportunity and difficulty scores from
// its volume, competition, and best current rank across active content.
func (s *Service) recalcKeyword(kw data.Keyword) error {
	best, err := s.bestRank(kw.ID)
	if err != nil {
		return err
	}

	opportunity := scoring.OpportunityScore(kw.MonthlySearch, kw.Competition, best)
	difficulty := scoring.DifficultyScore(kw.Competition, best)

	return s.keywordRepo.UpdateScores(kw.ID, difficulty, opportunity)
}

func (s *Service) bestRank(keywordID int) (*int, error) {
	contents, err := s.contentRepo.GetContentsByKeywordID(keywordID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(contents))
	for _, c := range contents {
		if c.IsActive {
			ids = append(ids, c.ID)
		}
	}

	latest, err := s.serpRepo.GetLatestRanks(ids)
	if err != nil {
		return nil, err
	}

	var best *int
	for _, ranks := range latest {
		if r := ranks.BestRank(); r != nil && (best == nil || *r < *best) {
			best = r
		}
	}

	return best, nil
}

// RecalculateMetrics refreshes opportunity and difficulty for every keyword.
// Per-keyword failures are logged and skipped.
func (s *Service) RecalculateMetrics() (int, error) {
	keywords, err := s.keywordRepo.GetKeywords()
	if err != nil {
		return 0, errors.Wrap(err, "recalculate metrics: load keywords")
	}

	updated := 0
	for _, kw := range keywords {
		if err := s.recalcKeyword(kw); err != nil {
			s.logger.Error("recalculate keyword metrics", "keyword", kw.Keyword, "error", err)
			continue
		}
		updated++
	}

	return updated, nil
}

// AccountScore is one account's recalculated blog score.
type AccountScore struct {
	AccountID int    `json:"accountId"`
	Name      string `json:"name"`
	BlogScore int    `json:"blogScore"`
	Skipped   bool   `json:"skipped"`
}

// RecalculateBlogScores re-estimates every account's blog score from its
// keywords' latest captures and opportunity scores, and overwrites the stored
// value. Accounts with no keywords are reported as skipped and left unchanged.
func (s *Service) RecalculateBlogScores() ([]AccountScore, error) {
	weights := scoring.DefaultWeights()
	if record, err := s.settingRepo.LoadTyped(data.SettingBlogScoreFormula); err == nil && record != nil {
		cfg := record.(*data.BlogScoreFormulaSetting)
		weights = scoring.Weights{Exposure: cfg.ExposureWeight, Rank: cfg.RankWeight, Quality: cfg.QualityWeight}
	} else if err != nil {
		s.logger.Error("load blog score formula, using defaults", "error", err)
	}

	accounts, err := s.accountRepo.GetAccounts()
	if err != nil {
		return nil, errors.Wrap(err, "recalculate blog scores: load accounts")
	}

	results := make([]AccountScore, 0, len(accounts))
	for _, account := range accounts {
		signals, err := s.accountSignals(account.ID)
		if err != nil {
			s.logger.Error("collect account signals", "account", account.Name, "error", err)
			continue
		}

		score, ok := scoring.BlogScore(signals, weights)
		if !ok {
			results = append(results, AccountScore{AccountID: account.ID, Name: account.Name,
				BlogScore: account.BlogScore, Skipped: true})
			continue
		}

		if err := s.accountRepo.UpdateBlogScore(account.ID, score); err != nil {
			s.logger.Error("update blog score", "account", account.Name, "error", err)
			continue
		}
		results = append(results, AccountScore{AccountID: account.ID, Name: account.Name, BlogScore: score})
	}

	return results, nil
}

// accountSignals builds one KeywordSignal per keyword the account publishes
// for, collapsing the account's content items for that keyword to the best
// rank per device.
func (s *Service) accountSignals(accountID int) ([]scoring.KeywordSignal, error) {
	contents, err := s.contentRepo.GetContentsByAccountID(accountID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(contents))
	for _, c := range contents {
		ids = append(ids, c.ID)
	}
	latest, err := s.serpRepo.GetLatestRanks(ids)
	if err != nil {
		return nil, err
	}

	byKeyword := make(map[int]*scoring.KeywordSignal)
	keywordOrder := make([]int, 0)
	for _, c := range contents {
		signal, ok := byKeyword[c.KeywordID]
		if !ok {
			signal = &scoring.KeywordSignal{}
			byKeyword[c.KeywordID] = signal
			keywordOrder = append(keywordOrder, c.KeywordID)
		}

		ranks := latest[c.ID]
		signal.PCRank = betterRank(signal.PCRank, ranks.PCRank)
		signal.MORank = betterRank(signal.MORank, ranks.MORank)
	}

	signals := make([]scoring.KeywordSignal, 0, len(keywordOrder))
	for _, keywordID := range keywordOrder {
		signal := byKeyword[keywordID]
		kw, err := s.keywordRepo.GetKeywordByID(keywordID)
		if err != nil {
			return nil, err
		}
		if kw != nil && kw.OpportunityScore > 0 {
			opp := kw.OpportunityScore
			signal.Opportunity = &opp
		}
		signals = append(signals, *signal)
	}

	return signals, nil
}

func betterRank(a, b *int) *int {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if *b < *a {
		return b
	}
	return a
}
