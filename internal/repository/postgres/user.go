package postgres

import (
	"database/sql"

	"smartedybot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// UpsertUser creates the user or refreshes its name and language
func (r *UserRepo) UpsertUser(user domain.User) error {
	query := `
		INSERT INTO users (user_id, first_name, language_code)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET first_name = EXCLUDED.first_name,
			language_code = EXCLUDED.language_code
	`
	_, err := r.db.Exec(query, user.UserID, user.FirstName, user.LanguageCode)
	return err
}
