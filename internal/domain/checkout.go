package domain

import "time"

// CheckoutSession is a journal record of a created payment session
type CheckoutSession struct {
	ID        int
	UserID    int64
	Tier      Tier
	SessionID string
	URL       string
	CreatedAt time.Time
}
