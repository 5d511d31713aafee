package domain

import "time"

// User represents a bot user as seen by the transport
type User struct {
	UserID       int64
	FirstName    string
	LanguageCode string
	CreatedAt    time.Time
}
