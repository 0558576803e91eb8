package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/widewildonline-ai/serp-tracker-web/data"
)

type KeywordRepo struct {
	db *sqlx.DB
}

func NewKeywordRepo(db *sqlx.DB) *KeywordRepo {
	return &KeywordRepo{db}
}

func (r *KeywordRepo) CreateKeyword(keyword data.Keyword) (int, error) {
	query := `
		INSERT INTO keywords (keyword, sub_keyword, monthly_search_pc, monthly_search_mo,
		                      monthly_search_total, competition, mobile_ratio)
		VALUES (:keyword, :sub_keyword, :monthly_search_pc, :monthly_search_mo,
		        :monthly_search_total, :competition, :mobile_ratio)
		ON CONFLICT (LOWER(keyword)) DO NOTHING
		RETURNING id`

	rows, err := r.db.NamedQuery(query, keyword)
	if err != nil {
		return 0, fmt.Errorf("create keyword: %w", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan returned id: %w", err)
		}
		return id, nil
	}

	query = "SELECT id FROM keywords WHERE LOWER(keyword) = LOWER($1)"
	err = r.db.Get(&id, query, keyword.Keyword)
	if err != nil {
		return 0, fmt.Errorf("get existing keyword id: %w", err)
	}

	return id, nil
}

func (r *KeywordRepo) GetKeywords() ([]data.Keyword, error) {
	var keywords []data.Keyword
	query := `
		SELECT id, keyword, sub_keyword, monthly_search_pc, monthly_search_mo,
		       monthly_search_total, competition, mobile_ratio,
		       difficulty_score, opportunity_score, created_at, updated_at
		FROM keywords
		ORDER BY monthly_search_total DESC, keyword ASC`

	err := r.db.Select(&keywords, query)
	if err != nil {
		return nil, fmt.Errorf("get keywords: %w", err)
	}

	return keywords, nil
}

func (r *KeywordRepo) GetKeywordByID(id int) (*data.Keyword, error) {
	var keyword data.Keyword
	query := "SELECT * FROM keywords WHERE id = $1"

	err := r.db.Get(&keyword, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get keyword by id: %w", err)
	}

	return &keyword, nil
}

// GetKeywordsByAccountID returns the keywords an account currently publishes
// for, via its content items.
func (r *KeywordRepo) GetKeywordsByAccountID(accountID int) ([]data.Keyword, error) {
	var keywords []data.Keyword
	query := `
		SELECT DISTINCT k.id, k.keyword, k.sub_keyword, k.monthly_search_pc, k.monthly_search_mo,
		       k.monthly_search_total, k.competition, k.mobile_ratio,
		       k.difficulty_score, k.opportunity_score, k.created_at, k.updated_at
		FROM keywords k
		JOIN contents c ON c.keyword_id = k.id
		WHERE c.account_id = $1
		ORDER BY k.monthly_search_total DESC, k.keyword ASC`

	err := r.db.Select(&keywords, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("get keywords by account id: %w", err)
	}

	return keywords, nil
}

func (r *KeywordRepo) UpdateKeyword(keyword data.Keyword) error {
	query := `
		UPDATE keywords
		SET keyword = :keyword, sub_keyword = :sub_keyword, updated_at = now()
		WHERE id = :id`

	rows, err := r.db.NamedQuery(query, keyword)
	if err != nil {
		return fmt.Errorf("update keyword: %w", err)
	}
	defer rows.Close()

	return nil
}

// UpdateVolumes stores the result of a volume refresh for one keyword.
func (r *KeywordRepo) UpdateVolumes(keyword data.Keyword) error {
	query := `
		UPDATE keywords
		SET monthly_search_pc = :monthly_search_pc, monthly_search_mo = :monthly_search_mo,
		    monthly_search_total = :monthly_search_total, competition = :competition,
		    mobile_ratio = :mobile_ratio, updated_at = now()
		WHERE id = :id`

	rows, err := r.db.NamedQuery(query, keyword)
	if err != nil {
		return fmt.Errorf("update keyword volumes: %w", err)
	}
	defer rows.Close()

	return nil
}

func (r *KeywordRepo) UpdateScores(id, difficulty, opportunity int) error {
	query := `
		UPDATE keywords
		SET difficulty_score = $1, opportunity_score = $2, updated_at = now()
		WHERE id = $3`

	_, err := r.db.Exec(query, difficulty, opportunity, id)
	if err != nil {
		return fmt.Errorf("update keyword scores: %w", err)
	}

	return nil
}

func (r *KeywordRepo) DeleteKeyword(id int) error {
	query := "DELETE FROM keywords WHERE id = $1"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("delete keyword: %w", err)
	}

	return nil
}
