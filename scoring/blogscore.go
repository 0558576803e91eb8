package scoring

import "math"

// Weights are the blog score components in percent; they must sum to 100.
// Stored in the blog_score_formula settings record and validated there.
type Weights struct {
	Exposure int
	Rank     int
	Quality  int
}

func DefaultWeights() Weights {
	return Weights{Exposure: 40, Rank: 30, Quality: 30}
}

// KeywordSignal is one keyword's contribution to an account's blog score:
// the latest rank per device and the keyword's opportunity score, all
// optional.
type KeywordSignal struct {
	PCRank      *int
	MORank      *int
	Opportunity *int
}

// BestRank returns the better of the two device ranks, nil when unexposed.
func (s KeywordSignal) BestRank() *int {
	if s.PCRank == nil {
		return s.MORank
	}
	if s.MORank == nil {
		return s.PCRank
	}
	if *s.MORank < *s.PCRank {
		return s.MORank
	}
	return s.PCRank
}

// BlogScore aggregates an account's keyword signals into one 0-100 score:
//
//	exposure_rate = exposed / total * 100
//	rank_score    = avg over exposed of max(0, 100 - (best_rank-1)*5)
//	quality_score = avg opportunity score, 50 when a keyword has none
//	blog_score    = round(weighted sum), clamped to [0,100]
//
// The second return is false for accounts with no keywords, which are skipped
// rather than zeroed.
func BlogScore(signals []KeywordSignal, w Weights) (int, bool) {
	if len(signals) == 0 {
		return 0, false
	}

	exposed := 0
	rankSum := 0.0
	qualitySum := 0.0
	for _, s := range signals {
		if best := s.BestRank(); best != nil {
			exposed++
			rankSum += math.Max(0, 100-float64(*best-1)*5)
		}
		if s.Opportunity != nil {
			qualitySum += float64(*s.Opportunity)
		} else {
			qualitySum += 50
		}
	}

	exposureRate := float64(exposed) / float64(len(signals)) * 100
	rankAvg := 0.0
	if exposed > 0 {
		rankAvg = rankSum / float64(exposed)
	}
	qualityAvg := qualitySum / float64(len(signals))

	score := exposureRate*float64(w.Exposure)/100 +
		rankAvg*float64(w.Rank)/100 +
		qualityAvg*float64(w.Quality)/100

	return clamp(int(math.Round(score)), 0, 100), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
