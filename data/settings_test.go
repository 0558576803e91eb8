package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSetting_BlogScoreFormula(t *testing.T) {
	record, err := DecodeSetting(SettingBlogScoreFormula,
		[]byte(`{"exposure_weight": 40, "rank_weight": 30, "quality_weight": 30}`))

	require.NoError(t, err)
	cfg := record.(*BlogScoreFormulaSetting)
	assert.Equal(t, 40, cfg.ExposureWeight)
}

func TestDecodeSetting_WeightsMustSumTo100(t *testing.T) {
	_, err := DecodeSetting(SettingBlogScoreFormula,
		[]byte(`{"exposure_weight": 50, "rank_weight": 30, "quality_weight": 30}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 100")
}

func TestDecodeSetting_UnknownKey(t *testing.T) {
	_, err := DecodeSetting("mystery", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown settings key")
}

func TestDecodeSetting_InvalidJSON(t *testing.T) {
	_, err := DecodeSetting(SettingEC2API, []byte(`{broken`))
	require.Error(t, err)
}

func TestDecodeSetting_EC2RequiresBaseURL(t *testing.T) {
	_, err := DecodeSetting(SettingEC2API, []byte(`{"secret": "s"}`))
	require.Error(t, err)

	record, err := DecodeSetting(SettingEC2API, []byte(`{"base_url": "http://crawler:8000", "secret": "s"}`))
	require.NoError(t, err)
	assert.Equal(t, "http://crawler:8000", record.(*EC2APISetting).BaseURL)
}

func TestDecodeSetting_SlackRequiresURLWhenEnabled(t *testing.T) {
	_, err := DecodeSetting(SettingSlackWebhook, []byte(`{"enabled": true, "webhook_url": ""}`))
	require.Error(t, err)

	_, err = DecodeSetting(SettingSlackWebhook, []byte(`{"enabled": false, "webhook_url": ""}`))
	require.NoError(t, err)
}

func TestDecodeSetting_SerpTracking(t *testing.T) {
	_, err := DecodeSetting(SettingSerpTracking,
		[]byte(`{"rank_max": 0, "search_sleep_min": 2, "search_sleep_max": 4}`))
	require.Error(t, err)

	_, err = DecodeSetting(SettingSerpTracking,
		[]byte(`{"rank_max": 30, "search_sleep_min": 5, "search_sleep_max": 2}`))
	require.Error(t, err)
}
