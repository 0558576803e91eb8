package data

import (
	"encoding/json"
	"fmt"
)

// Settings are stored as one JSONB blob per key. Each key has a typed record
// decoded and validated here, at the load boundary, so the rest of the code
// never touches raw JSON.

const (
	SettingEC2API             = "ec2_api"
	SettingBlogScoreFormula   = "blog_score_formula"
	SettingDailyPublishLimits = "daily_publish_limits"
	SettingSerpTracking       = "serp_tracking"
	SettingGPTKeyword         = "gpt_keyword_extraction"
	SettingGPTSerp            = "gpt_serp_analysis"
	SettingSlackWebhook       = "slack_webhook"
)

type EC2APISetting struct {
	BaseURL string `json:"base_url"`
	Secret  string `json:"secret"`
}

type BlogScoreFormulaSetting struct {
	ExposureWeight int `json:"exposure_weight"`
	RankWeight     int `json:"rank_weight"`
	QualityWeight  int `json:"quality_weight"`
}

type DailyPublishLimitsSetting struct {
	HighTierThreshold   int `json:"high_tier_threshold"`
	MediumTierThreshold int `json:"medium_tier_threshold"`
	HighLimit           int `json:"high_limit"`
	MediumLimit         int `json:"medium_limit"`
	LowLimit            int `json:"low_limit"`
}

type SerpTrackingSetting struct {
	RankMax        int `json:"rank_max"`
	UnexposedRank  int `json:"unexposed_rank"`
	SearchSleepMin int `json:"search_sleep_min"`
	SearchSleepMax int `json:"search_sleep_max"`
}

type GPTPromptSetting struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type SlackWebhookSetting struct {
	Enabled           bool   `json:"enabled"`
	WebhookURL        string `json:"webhook_url"`
	NotifyRankDrop    bool   `json:"notify_rank_drop"`
	NotifyJobDone     bool   `json:"notify_job_done"`
	RankDropThreshold int    `json:"rank_drop_threshold"`
}

func (s EC2APISetting) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("ec2_api: base_url is required")
	}
	return nil
}

func (s BlogScoreFormulaSetting) Validate() error {
	sum := s.ExposureWeight + s.RankWeight + s.QualityWeight
	if sum != 100 {
		return fmt.Errorf("blog_score_formula: weights must sum to 100, got %d", sum)
	}
	return nil
}

func (s DailyPublishLimitsSetting) Validate() error {
	if s.HighTierThreshold <= s.MediumTierThreshold {
		return fmt.Errorf("daily_publish_limits: high_tier_threshold must exceed medium_tier_threshold")
	}
	if s.HighLimit < 0 || s.MediumLimit < 0 || s.LowLimit < 0 {
		return fmt.Errorf("daily_publish_limits: limits must be non-negative")
	}
	return nil
}

func (s SerpTrackingSetting) Validate() error {
	if s.RankMax < 1 {
		return fmt.Errorf("serp_tracking: rank_max must be at least 1")
	}
	if s.SearchSleepMin > s.SearchSleepMax {
		return fmt.Errorf("serp_tracking: search_sleep_min exceeds search_sleep_max")
	}
	return nil
}

func (s GPTPromptSetting) Validate() error {
	if s.Model == "" {
		return fmt.Errorf("gpt setting: model is required")
	}
	return nil
}

func (s SlackWebhookSetting) Validate() error {
	if s.Enabled && s.WebhookURL == "" {
		return fmt.Errorf("slack_webhook: webhook_url is required when enabled")
	}
	return nil
}

type validator interface {
	Validate() error
}

// DecodeSetting parses the raw blob for a known settings key into its typed
// record and validates it. Unknown keys are rejected.
func DecodeSetting(key string, raw []byte) (any, error) {
	var record validator
	switch key {
	case SettingEC2API:
		record = &EC2APISetting{}
	case SettingBlogScoreFormula:
		record = &BlogScoreFormulaSetting{}
	case SettingDailyPublishLimits:
		record = &DailyPublishLimitsSetting{}
	case SettingSerpTracking:
		record = &SerpTrackingSetting{}
	case SettingGPTKeyword, SettingGPTSerp:
		record = &GPTPromptSetting{}
	case SettingSlackWebhook:
		record = &SlackWebhookSetting{}
	default:
		return nil, fmt.Errorf("unknown settings key %q", key)
	}

	if err := json.Unmarshal(raw, record); err != nil {
		return nil, fmt.Errorf("decode setting %s: %w", key, err)
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}
