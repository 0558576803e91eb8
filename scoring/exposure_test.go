package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/widewildonline-ai/serp-tracker-web/enums"
)

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierHigh, TierFor(85, 70, 40))
	assert.Equal(t, TierHigh, TierFor(70, 70, 40))
	assert.Equal(t, TierMedium, TierFor(55, 70, 40))
	assert.Equal(t, TierMedium, TierFor(40, 70, 40))
	assert.Equal(t, TierLow, TierFor(39, 70, 40))
	assert.Equal(t, TierLow, TierFor(0, 70, 40))
}

func TestExposureProbability_Table(t *testing.T) {
	assert.Equal(t, 0.9, ExposureProbability(enums.CompetitionLow, TierHigh))
	assert.Equal(t, 0.5, ExposureProbability(enums.CompetitionHigh, TierHigh))
	assert.Equal(t, 0.15, ExposureProbability(enums.CompetitionHigh, TierLow))
	assert.Equal(t, 0.45, ExposureProbability(enums.CompetitionUnknown, TierMedium))
}

func TestExposureProbability_Fallback(t *testing.T) {
	assert.Equal(t, 0.3, ExposureProbability(enums.Competition("???"), TierHigh))
	assert.Equal(t, 0.3, ExposureProbability(enums.CompetitionLow, Tier("???")))
}
