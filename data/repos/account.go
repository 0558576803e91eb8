package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/widewildonline-ai/serp-tracker-web/data"
)

type AccountRepo struct {
	db *sqlx.DB
}

func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db}
}

func (r *AccountRepo) CreateAccount(account data.Account) (int, error) {
	query := `
		INSERT INTO accounts (name, platform, url, blog_score, daily_publish_limit)
		VALUES (:name, :platform, :url, :blog_score, :daily_publish_limit)
		RETURNING id`

	rows, err := r.db.NamedQuery(query, account)
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
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

func (r *AccountRepo) GetAccounts() ([]data.Account, error) {
	var accounts []data.Account
	query := `
		SELECT id, name, platform, url, blog_score, daily_publish_limit, created_at, updated_at
		FROM accounts
		ORDER BY blog_score DESC, name ASC`

	err := r.db.Select(&accounts, query)
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepo) GetAccountByID(id int) (*data.Account, error) {
	var account data.Account
	query := "SELECT * FROM accounts WHERE id = $1"

	err := r.db.Get(&account, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}

	return &account, nil
}

func (r *AccountRepo) UpdateAccount(account data.Account) error {
	query := `
		UPDATE accounts
		SET name = :name, platform = :platform, url = :url,
		    daily_publish_limit = :daily_publish_limit, updated_at = now()
		WHERE id = :id`

	rows, err := r.db.NamedQuery(query, account)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	defer rows.Close()

	return nil
}

// UpdateBlogScore overwrites the stored score; called by the estimator after
// each recalculation.
func (r *AccountRepo) UpdateBlogScore(id, score int) error {
	query := "UPDATE accounts SET blog_score = $1, updated_at = now() WHERE id = $2"
	_, err := r.db.Exec(query, score, id)
	if err != nil {
		return fmt.Errorf("update blog score: %w", err)
	}

	return nil
}

func (r *AccountRepo) DeleteAccount(id int) error {
	query := "DELETE FROM accounts WHERE id = $1"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	return nil
}
