package data

import (
	"time"

	"github.com/widewildonline-ai/serp-tracker-web/enums"
)

type Account struct {
	ID                int       `db:"id"`
	Name              string    `db:"name"`
	Platform          string    `db:"platform"`
	URL               *string   `db:"url"`
	BlogScore         int       `db:"blog_score"`
	DailyPublishLimit int       `db:"daily_publish_limit"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type Keyword struct {
	ID               int               `db:"id"`
	Keyword          string            `db:"keyword"`
	SubKeyword       *string           `db:"sub_keyword"`
	MonthlySearchPC  int               `db:"monthly_search_pc"`
	MonthlySearchMO  int               `db:"monthly_search_mo"`
	MonthlySearch    int               `db:"monthly_search_total"`
	Competition      enums.Competition `db:"competition"`
	MobileRatio      float64           `db:"mobile_ratio"`
	DifficultyScore  int               `db:"difficulty_score"`
	OpportunityScore int               `db:"opportunity_score"`
	CreatedAt        time.Time         `db:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"`
}

type Content struct {
	ID            int        `db:"id"`
	KeywordID     int        `db:"keyword_id"`
	AccountID     *int       `db:"account_id"`
	URL           string     `db:"url"`
	Title         *string    `db:"title"`
	PublishedDate *time.Time `db:"published_date"`
	IsActive      bool       `db:"is_active"`
	CamfitLink    bool       `db:"camfit_link"`
	SourceFile    *string    `db:"source_file"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type SerpResult struct {
	ID         int          `db:"id"`
	ContentID  int          `db:"content_id"`
	Device     enums.Device `db:"device"`
	Rank       *int         `db:"rank"`
	RankChange int          `db:"rank_change"`
	IsExposed  bool         `db:"is_exposed"`
	CapturedAt time.Time    `db:"captured_at"`
	NotifiedAt *time.Time   `db:"notified_at"`
}

type Setting struct {
	Key       string    `db:"key"`
	Value     []byte    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
