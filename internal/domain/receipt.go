package domain

import "time"

// Receipt is the content of the PDF document sent after checkout
type Receipt struct {
	Title    string
	Body     string
	Tier     Tier
	IssuedAt time.Time
}
