package enums

type RecommendStatus string

const (
	// RecommendUrgent means the keyword has active content but none of it is
	// currently exposed on either device: a regression from tracked state.
	RecommendUrgent RecommendStatus = "urgent"

	// RecommendRecovery means no active content remains but deactivated
	// content exists: the keyword lost exposure and was parked.
	RecommendRecovery RecommendStatus = "recovery"

	// RecommendNew means the keyword has never had content published.
	RecommendNew RecommendStatus = "new"
)
