package postgres

import (
	"database/sql"
	"fmt"

	"smartedybot/internal/domain"
)

// CheckoutRepo implements repository.CheckoutRepository
type CheckoutRepo struct {
	db *sql.DB
}

// NewCheckoutRepo creates a new checkout journal repository
func NewCheckoutRepo(db *sql.DB) *CheckoutRepo {
	return &CheckoutRepo{db: db}
}

// SaveSession appends a created checkout session to the journal
func (r *CheckoutRepo) SaveSession(session domain.CheckoutSession) error {
	query := `
		INSERT INTO checkout_sessions (user_id, tier, amount, currency, session_id, url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query,
		session.UserID,
		int(session.Tier),
		session.Tier.UnitAmount(),
		domain.Currency,
		session.SessionID,
		session.URL,
	)
	return err
}

// CleanOldSessions removes journal rows older than the given number of days
func (r *CheckoutRepo) CleanOldSessions(days int) (int64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %d", days)
	}

	query := `DELETE FROM checkout_sessions WHERE created_at < NOW() - make_interval(days => $1)`
	res, err := r.db.Exec(query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
