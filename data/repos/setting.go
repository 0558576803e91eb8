package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/widewildonline-ai/serp-tracker-web/data"
)

type SettingRepo struct {
	db *sqlx.DB
}

func NewSettingRepo(db *sqlx.DB) *SettingRepo {
	return &SettingRepo{db}
}

func (r *SettingRepo) GetSetting(key string) (*data.Setting, error) {
	var setting data.Setting
	query := "SELECT key, value, updated_at FROM settings WHERE key = $1"

	err := r.db.Get(&setting, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}

	return &setting, nil
}

func (r *SettingRepo) UpsertSetting(key string, value []byte) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	_, err := r.db.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}

	return nil
}

// LoadTyped reads a settings key and decodes it into its typed, validated
// record. Returns nil when the key has never been saved.
func (r *SettingRepo) LoadTyped(key string) (any, error) {
	setting, err := r.GetSetting(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}

	return data.DecodeSetting(key, setting.Value)
}
