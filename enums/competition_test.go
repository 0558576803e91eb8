package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCompetition_Korean(t *testing.T) {
	assert.Equal(t, CompetitionLow, ParseCompetition("낮음"))
	assert.Equal(t, CompetitionMedium, ParseCompetition("보통"))
	assert.Equal(t, CompetitionHigh, ParseCompetition("높음"))
	assert.Equal(t, CompetitionUnknown, ParseCompetition("알수없음"))
}

func TestParseCompetition_English(t *testing.T) {
	assert.Equal(t, CompetitionLow, ParseCompetition("low"))
	assert.Equal(t, CompetitionLow, ParseCompetition(" LOW "))
	assert.Equal(t, CompetitionMedium, ParseCompetition("Medium"))
	assert.Equal(t, CompetitionHigh, ParseCompetition("high"))
}

func TestParseCompetition_UnrecognizedDefaultsToUnknown(t *testing.T) {
	assert.Equal(t, CompetitionUnknown, ParseCompetition(""))
	assert.Equal(t, CompetitionUnknown, ParseCompetition("???"))
}
