package testutil

import (
	"os"

	"smartedybot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, firstName, lang string) domain.User {
	return domain.User{
		UserID:       userID,
		FirstName:    firstName,
		LanguageCode: lang,
	}
}

// NewTestSession creates a checkout session as returned by a provider
func NewTestSession(id string) domain.CheckoutSession {
	return domain.CheckoutSession{
		SessionID: id,
		URL:       "https://checkout.stripe.com/c/pay/" + id,
	}
}

// WriteFile is a Renderer stand-in that creates a small file at path
func WriteFile(path string) error {
	return os.WriteFile(path, []byte("%PDF-1.3\n"), 0o600)
}

// FileExists reports whether path exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
