package data

import (
	"time"

	"github.com/widewildonline-ai/serp-tracker-web/enums"
)

// RankDrop is a joined row used by the rank-drop notifier: a SERP capture
// whose rank worsened past the alert threshold, with enough context to build
// a Slack message.
type RankDrop struct {
	ID         int          `db:"id"`
	ContentID  int          `db:"content_id"`
	Keyword    string       `db:"keyword"`
	URL        string       `db:"url"`
	Device     enums.Device `db:"device"`
	Rank       *int         `db:"rank"`
	RankChange int          `db:"rank_change"`
	CapturedAt time.Time    `db:"captured_at"`
}

// ContentRanks pairs a content item with its latest capture per device.
type ContentRanks struct {
	ContentID int
	PCRank    *int
	MORank    *int
}

// BestRank returns the better (lower) of the two device ranks, nil when the
// content is not exposed on either device.
func (c ContentRanks) BestRank() *int {
	if c.PCRank == nil {
		return c.MORank
	}
	if c.MORank == nil {
		return c.PCRank
	}
	if *c.MORank < *c.PCRank {
		return c.MORank
	}
	return c.PCRank
}
