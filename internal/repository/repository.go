package repository

import (
	"smartedybot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	UpsertUser(user domain.User) error
}

// CheckoutRepository defines checkout journal operations
type CheckoutRepository interface {
	SaveSession(session domain.CheckoutSession) error
	CleanOldSessions(days int) (int64, error)
}
