package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/enums"
)

type SerpRepo struct {
	db *sqlx.DB
}

func NewSerpRepo(db *sqlx.DB) *SerpRepo {
	return &SerpRepo{db}
}

// UpsertResult stores one capture. Re-running a check on the same day
// overwrites that day's row.
func (r *SerpRepo) UpsertResult(result data.SerpResult) error {
	query := `
		INSERT INTO serp_results (content_id, device, rank, rank_change, is_exposed, captured_at)
		VALUES (:content_id, :device, :rank, :rank_change, :is_exposed, :captured_at)
		ON CONFLICT (content_id, device, captured_at)
		DO UPDATE SET rank = EXCLUDED.rank, rank_change = EXCLUDED.rank_change,
		              is_exposed = EXCLUDED.is_exposed, notified_at = NULL`

	_, err := r.db.NamedExec(query, result)
	if err != nil {
		return fmt.Errorf("upsert serp result: %w", err)
	}

	return nil
}

// GetPreviousRank returns the most recent rank captured before the given date
// for the same content and device, nil when there is no prior capture.
func (r *SerpRepo) GetPreviousRank(contentID int, device enums.Device, before time.Time) (*int, error) {
	var rank sql.NullInt64
	query := `
		SELECT rank FROM serp_results
		WHERE content_id = $1 AND device = $2 AND captured_at < $3
		ORDER BY captured_at DESC
		LIMIT 1`

	err := r.db.Get(&rank, query, contentID, device, before)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get previous rank: %w", err)
	}
	if !rank.Valid {
		return nil, nil
	}

	v := int(rank.Int64)
	return &v, nil
}

func (r *SerpRepo) GetHistoryByKeywordID(keywordID int) ([]data.SerpResult, error) {
	var results []data.SerpResult
	query := `
		SELECT s.id, s.content_id, s.device, s.rank, s.rank_change, s.is_exposed,
		       s.captured_at, s.notified_at
		FROM serp_results s
		JOIN contents c ON c.id = s.content_id
		WHERE c.keyword_id = $1
		ORDER BY s.captured_at DESC, s.content_id ASC, s.device ASC`

	err := r.db.Select(&results, query, keywordID)
	if err != nil {
		return nil, fmt.Errorf("get serp history by keyword id: %w", err)
	}

	return results, nil
}

// GetLatestRanks returns the newest capture per (content, device) for the
// given content ids, collapsed into one row per content.
func (r *SerpRepo) GetLatestRanks(contentIDs []int) (map[int]data.ContentRanks, error) {
	ranks := make(map[int]data.ContentRanks, len(contentIDs))
	if len(contentIDs) == 0 {
		return ranks, nil
	}

	var rows []data.SerpResult
	query, args, err := sqlx.In(`
		SELECT DISTINCT ON (content_id, device)
		       id, content_id, device, rank, rank_change, is_exposed, captured_at, notified_at
		FROM serp_results
		WHERE content_id IN (?)
		ORDER BY content_id, device, captured_at DESC`, contentIDs)
	if err != nil {
		return nil, fmt.Errorf("build get latest ranks: %w", err)
	}
	query = r.db.Rebind(query)

	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("get latest ranks: %w", err)
	}

	for _, row := range rows {
		cr, ok := ranks[row.ContentID]
		if !ok {
			cr = data.ContentRanks{ContentID: row.ContentID}
		}
		switch row.Device {
		case enums.DevicePC:
			cr.PCRank = row.Rank
		case enums.DeviceMO:
			cr.MORank = row.Rank
		}
		ranks[row.ContentID] = cr
	}

	return ranks, nil
}

// GetUnnotifiedDrops finds captures whose rank worsened by at least threshold
// positions and have not been alerted yet.
func (r *SerpRepo) GetUnnotifiedDrops(threshold int) ([]data.RankDrop, error) {
	var drops []data.RankDrop
	query := `
		SELECT s.id, s.content_id, k.keyword, c.url, s.device, s.rank, s.rank_change, s.captured_at
		FROM serp_results s
		JOIN contents c ON c.id = s.content_id
		JOIN keywords k ON k.id = c.keyword_id
		WHERE s.notified_at IS NULL AND s.rank_change <= $1
		ORDER BY s.captured_at ASC`

	err := r.db.Select(&drops, query, -threshold)
	if err != nil {
		return nil, fmt.Errorf("get unnotified drops: %w", err)
	}

	return drops, nil
}

func (r *SerpRepo) MarkNotified(ids []int64, notifiedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE serp_results SET notified_at = ? WHERE id IN (?)`, notifiedAt, ids)
	if err != nil {
		return fmt.Errorf("build mark notified: %w", err)
	}
	query = r.db.Rebind(query)

	_, err = r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}

	return nil
}
