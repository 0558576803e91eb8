package scoring

import "github.com/widewildonline-ai/serp-tracker-web/enums"

type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// TierFor buckets an account's blog score against the two configured
// thresholds from the daily_publish_limits settings record.
func TierFor(score, highThreshold, mediumThreshold int) Tier {
	switch {
	case score >= highThreshold:
		return TierHigh
	case score >= mediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// Fixed competition x tier probability table. No calibration from observed
// outcomes; a known simplification.
var exposureProbabilities = map[enums.Competition]map[Tier]float64{
	enums.CompetitionLow: {
		TierHigh: 0.9, TierMedium: 0.7, TierLow: 0.5,
	},
	enums.CompetitionMedium: {
		TierHigh: 0.7, TierMedium: 0.5, TierLow: 0.3,
	},
	enums.CompetitionHigh: {
		TierHigh: 0.5, TierMedium: 0.3, TierLow: 0.15,
	},
	enums.CompetitionUnknown: {
		TierHigh: 0.6, TierMedium: 0.45, TierLow: 0.3,
	},
}

// ExposureProbability estimates the chance a tier of account gets a keyword
// exposed. Unmapped combinations fall back to 0.3.
func ExposureProbability(comp enums.Competition, tier Tier) float64 {
	if row, ok := exposureProbabilities[comp]; ok {
		if p, ok := row[tier]; ok {
			return p
		}
	}
	return 0.3
}
