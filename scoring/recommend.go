package scoring

import (
	"math"
	"sort"

	"github.com/widewildonline-ai/serp-tracker-web/enums"
)

// AccountInfo is the slice of an account the recommender needs.
type AccountInfo struct {
	ID        int
	Name      string
	BlogScore int
}

// ContentState summarizes one content item for classification.
type ContentState struct {
	AccountID *int
	Active    bool
	Exposed   bool
}

// KeywordState is the current snapshot of one keyword and its content items.
type KeywordState struct {
	ID          int
	Keyword     string
	Volume      int
	Competition enums.Competition
	Contents    []ContentState
}

type RecommendConfig struct {
	HighTierThreshold   int
	MediumTierThreshold int
}

type Recommendation struct {
	KeywordID           int
	Keyword             string
	Status              enums.RecommendStatus
	Volume              int
	Competition         enums.Competition
	Account             *AccountInfo
	ExposureProbability float64
	ExpectedImpact      int
}

var statusWeights = map[enums.RecommendStatus]float64{
	enums.RecommendUrgent:   2.0,
	enums.RecommendRecovery: 1.5,
	enums.RecommendNew:      1.0,
}

// Blog score bands an account must fall in to be recommended for a keyword of
// the given competition. Outside the band the global best account is used.
var accountBands = map[enums.Competition][2]int{
	enums.CompetitionHigh:    {60, 100},
	enums.CompetitionMedium:  {35, 69},
	enums.CompetitionLow:     {0, 34},
	enums.CompetitionUnknown: {0, 100},
}

// Recommend classifies every keyword into exactly one of urgent, recovery,
// new, or none (healthy keywords are excluded), picks an account for each,
// and returns a prioritized worklist. Recomputed fresh from the snapshot on
// every call; the ordering is fully deterministic.
func Recommend(keywords []KeywordState, accounts []AccountInfo, cfg RecommendConfig) []Recommendation {
	recs := make([]Recommendation, 0, len(keywords))
	for _, kw := range keywords {
		status, ok := Classify(kw)
		if !ok {
			continue
		}

		account := pickAccount(kw, status, accounts)
		tier := TierLow
		prob := 0.3
		if account != nil {
			tier = TierFor(account.BlogScore, cfg.HighTierThreshold, cfg.MediumTierThreshold)
			prob = ExposureProbability(kw.Competition, tier)
		}

		recs = append(recs, Recommendation{
			KeywordID:           kw.ID,
			Keyword:             kw.Keyword,
			Status:              status,
			Volume:              kw.Volume,
			Competition:         kw.Competition,
			Account:             account,
			ExposureProbability: prob,
			ExpectedImpact:      expectedImpact(prob, kw.Volume, status),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].ExpectedImpact != recs[j].ExpectedImpact {
			return recs[i].ExpectedImpact > recs[j].ExpectedImpact
		}
		if recs[i].Volume != recs[j].Volume {
			return recs[i].Volume > recs[j].Volume
		}
		return recs[i].Keyword < recs[j].Keyword
	})

	return recs
}

// Classify maps a keyword to its recommendation status. The false return
// means the keyword is healthy (an active content item is exposed) and is
// excluded from the worklist.
func Classify(kw KeywordState) (enums.RecommendStatus, bool) {
	if len(kw.Contents) == 0 {
		return enums.RecommendNew, true
	}

	hasActive := false
	for _, c := range kw.Contents {
		if !c.Active {
			continue
		}
		hasActive = true
		if c.Exposed {
			return "", false
		}
	}

	if hasActive {
		return enums.RecommendUrgent, true
	}
	return enums.RecommendRecovery, true
}

func expectedImpact(prob float64, volume int, status enums.RecommendStatus) int {
	lv := math.Log10(float64(volume) + 10)
	if lv < 0.5 {
		lv = 0.5
	}
	return int(math.Round(prob * lv * statusWeights[status] * 100))
}

func pickAccount(kw KeywordState, status enums.RecommendStatus, accounts []AccountInfo) *AccountInfo {
	// Urgent and recovery keywords keep the account that already owns the
	// content when one is set.
	if status == enums.RecommendUrgent || status == enums.RecommendRecovery {
		if id := existingAccountID(kw); id != nil {
			for i := range accounts {
				if accounts[i].ID == *id {
					return &accounts[i]
				}
			}
		}
	}

	if len(accounts) == 0 {
		return nil
	}

	band := accountBands[kw.Competition]
	var inBand *AccountInfo
	var best *AccountInfo
	for i := range accounts {
		a := &accounts[i]
		if best == nil || a.BlogScore > best.BlogScore {
			best = a
		}
		if a.BlogScore >= band[0] && a.BlogScore <= band[1] {
			if inBand == nil || a.BlogScore > inBand.BlogScore {
				inBand = a
			}
		}
	}

	if inBand != nil {
		return inBand
	}
	return best
}

func existingAccountID(kw KeywordState) *int {
	for _, c := range kw.Contents {
		if c.Active && c.AccountID != nil {
			return c.AccountID
		}
	}
	for _, c := range kw.Contents {
		if c.AccountID != nil {
			return c.AccountID
		}
	}
	return nil
}
