package enums

import "strings"

type Competition string

const (
	CompetitionLow     Competition = "low"
	CompetitionMedium  Competition = "medium"
	CompetitionHigh    Competition = "high"
	CompetitionUnknown Competition = "unknown"
)

// ParseCompetition normalizes a competition label. The crawler service and
// legacy data use Korean labels, newer rows use English; both are accepted.
// Anything unrecognized maps to CompetitionUnknown.
func ParseCompetition(s string) Competition {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "낮음":
		return CompetitionLow
	case "medium", "mid", "보통", "중간":
		return CompetitionMedium
	case "high", "높음":
		return CompetitionHigh
	default:
		return CompetitionUnknown
	}
}
