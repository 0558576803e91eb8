package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/widewildonline-ai/serp-tracker-web/data"
)

// ErrDuplicateContent signals the (keyword, url) uniqueness violation so
// handlers can return a friendly duplicate message instead of a 500.
var ErrDuplicateContent = errors.New("content already registered for this keyword")

type ContentRepo struct {
	db *sqlx.DB
}

func NewContentRepo(db *sqlx.DB) *ContentRepo {
	return &ContentRepo{db}
}

func (r *ContentRepo) CreateContent(content data.Content) (int, error) {
	query := `
		INSERT INTO contents (keyword_id, account_id, url, title, published_date,
		                      is_active, camfit_link, source_file)
		VALUES (:keyword_id, :account_id, :url, :title, :published_date,
		        :is_active, :camfit_link, :source_file)
		RETURNING id`

	rows, err := r.db.NamedQuery(query, content)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, ErrDuplicateContent
		}
		return 0, fmt.Errorf("create content: %w", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan returned id: %w", err)
		}
	}

	return id, nil
}

func (r *ContentRepo) GetContents() ([]data.Content, error) {
	var contents []data.Content
	query := `
		SELECT id, keyword_id, account_id, url, title, published_date,
		       is_active, camfit_link, source_file, created_at, updated_at
		FROM contents
		ORDER BY created_at DESC`

	err := r.db.Select(&contents, query)
	if err != nil {
		return nil, fmt.Errorf("get contents: %w", err)
	}

	return contents, nil
}

func (r *ContentRepo) GetContentByID(id int) (*data.Content, error) {
	var content data.Content
	query := "SELECT * FROM contents WHERE id = $1"

	err := r.db.Get(&content, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get content by id: %w", err)
	}

	return &content, nil
}

func (r *ContentRepo) GetContentsByKeywordID(keywordID int) ([]data.Content, error) {
	var contents []data.Content
	query := `
		SELECT id, keyword_id, account_id, url, title, published_date,
		       is_active, camfit_link, source_file, created_at, updated_at
		FROM contents
		WHERE keyword_id = $1
		ORDER BY created_at ASC`

	err := r.db.Select(&contents, query, keywordID)
	if err != nil {
		return nil, fmt.Errorf("get contents by keyword id: %w", err)
	}

	return contents, nil
}

func (r *ContentRepo) GetContentsByAccountID(accountID int) ([]data.Content, error) {
	var contents []data.Content
	query := `
		SELECT id, keyword_id, account_id, url, title, published_date,
		       is_active, camfit_link, source_file, created_at, updated_at
		FROM contents
		WHERE account_id = $1
		ORDER BY keyword_id ASC, created_at ASC`

	err := r.db.Select(&contents, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("get contents by account id: %w", err)
	}

	return contents, nil
}

func (r *ContentRepo) GetActiveContents() ([]data.Content, error) {
	var contents []data.Content
	query := `
		SELECT id, keyword_id, account_id, url, title, published_date,
		       is_active, camfit_link, source_file, created_at, updated_at
		FROM contents
		WHERE is_active = true
		ORDER BY keyword_id ASC, created_at ASC`

	err := r.db.Select(&contents, query)
	if err != nil {
		return nil, fmt.Errorf("get active contents: %w", err)
	}

	return contents, nil
}

func (r *ContentRepo) UpdateContent(content data.Content) error {
	query := `
		UPDATE contents
		SET account_id = :account_id, url = :url, title = :title,
		    published_date = :published_date, camfit_link = :camfit_link,
		    source_file = :source_file, updated_at = now()
		WHERE id = :id`

	rows, err := r.db.NamedQuery(query, content)
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	defer rows.Close()

	return nil
}

func (r *ContentRepo) SetActive(id int, active bool) error {
	query := "UPDATE contents SET is_active = $1, updated_at = now() WHERE id = $2"
	_, err := r.db.Exec(query, active, id)
	if err != nil {
		return fmt.Errorf("set content active: %w", err)
	}

	return nil
}

func (r *ContentRepo) DeleteContent(id int) error {
	query := "DELETE FROM contents WHERE id = $1"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}

	return nil
}
