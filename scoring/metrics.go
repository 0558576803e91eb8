package scoring

import (
	"math"

	"github.com/widewildonline-ai/serp-tracker-web/enums"
)

var competitionScores = map[enums.Competition]int{
	enums.CompetitionLow:     30,
	enums.CompetitionMedium:  20,
	enums.CompetitionHigh:    10,
	enums.CompetitionUnknown: 15,
}

var difficultyBase = map[enums.Competition]int{
	enums.CompetitionLow:     20,
	enums.CompetitionMedium:  50,
	enums.CompetitionHigh:    80,
	enums.CompetitionUnknown: 50,
}

// OpportunityScore estimates how attractive a keyword is to target:
//
//	volume score      = min(40, log10(volume+10) * 10)
//	competition score = low 30 / medium 20 / high 10 / unknown 15
//	rank bonus        = 30 if best rank <=5, 25 if <=10, 20 if <=20, else 15
//
// The sum lands near 100 by construction and is not hard-clamped. Missing
// inputs are default-substituted: volume 0, competition unknown, rank nil.
func OpportunityScore(volume int, comp enums.Competition, bestRank *int) int {
	if volume < 0 {
		volume = 0
	}

	volumeScore := math.Min(40, math.Log10(float64(volume)+10)*10)

	compScore, ok := competitionScores[comp]
	if !ok {
		compScore = competitionScores[enums.CompetitionUnknown]
	}

	rankBonus := 15
	if bestRank != nil {
		switch {
		case *bestRank <= 5:
			rankBonus = 30
		case *bestRank <= 10:
			rankBonus = 25
		case *bestRank <= 20:
			rankBonus = 20
		}
	}

	return int(math.Round(volumeScore + float64(compScore) + float64(rankBonus)))
}

// DifficultyScore is competition-driven (high 80 / medium 50 / low 20 /
// unknown 50), discounted by 20 and floored at 10 when the keyword already
// ranks in the top 10.
func DifficultyScore(comp enums.Competition, bestRank *int) int {
	score, ok := difficultyBase[comp]
	if !ok {
		score = difficultyBase[enums.CompetitionUnknown]
	}

	if bestRank != nil && *bestRank <= 10 {
		score -= 20
		if score < 10 {
			score = 10
		}
	}

	return score
}
