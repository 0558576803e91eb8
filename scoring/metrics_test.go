package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/widewildonline-ai/serp-tracker-web/enums"
)

func TestOpportunityScore_Defaults(t *testing.T) {
	// volume 0, unknown competition, no rank:
	// min(40, log10(10)*10) + 15 + 15 = 10 + 15 + 15
	assert.Equal(t, 40, OpportunityScore(0, enums.CompetitionUnknown, nil))
	assert.Equal(t, 40, OpportunityScore(-5, enums.ParseCompetition("알수없음"), nil))
}

func TestOpportunityScore_VolumeCapped(t *testing.T) {
	// log10(1000010)*10 ~ 60, capped at 40
	assert.Equal(t, 40+30+15, OpportunityScore(1_000_000, enums.CompetitionLow, nil))
}

func TestOpportunityScore_RankBonus(t *testing.T) {
	assert.Equal(t, 10+15+30, OpportunityScore(0, enums.CompetitionUnknown, intp(5)))
	assert.Equal(t, 10+15+25, OpportunityScore(0, enums.CompetitionUnknown, intp(10)))
	assert.Equal(t, 10+15+20, OpportunityScore(0, enums.CompetitionUnknown, intp(20)))
	assert.Equal(t, 10+15+15, OpportunityScore(0, enums.CompetitionUnknown, intp(21)))
}

func TestOpportunityScore_Deterministic(t *testing.T) {
	a := OpportunityScore(1234, enums.CompetitionMedium, intp(7))
	b := OpportunityScore(1234, enums.CompetitionMedium, intp(7))
	assert.Equal(t, a, b)
}

func TestDifficultyScore_Base(t *testing.T) {
	assert.Equal(t, 80, DifficultyScore(enums.CompetitionHigh, nil))
	assert.Equal(t, 50, DifficultyScore(enums.CompetitionMedium, nil))
	assert.Equal(t, 20, DifficultyScore(enums.CompetitionLow, nil))
	assert.Equal(t, 50, DifficultyScore(enums.CompetitionUnknown, nil))
}

func TestDifficultyScore_RankDiscount(t *testing.T) {
	assert.Equal(t, 60, DifficultyScore(enums.CompetitionHigh, intp(3)))
	assert.Equal(t, 30, DifficultyScore(enums.CompetitionMedium, intp(10)))
	// low base 20 - 20 floors at 10
	assert.Equal(t, 10, DifficultyScore(enums.CompetitionLow, intp(1)))
	// rank 11 is outside the discount window
	assert.Equal(t, 80, DifficultyScore(enums.CompetitionHigh, intp(11)))
}
