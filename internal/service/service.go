package service

import (
	"context"

	"smartedybot/internal/domain"
)

// PaymentProvider creates hosted checkout sessions
type PaymentProvider interface {
	CreateSession(ctx context.Context, userID int64, tier domain.Tier) (domain.CheckoutSession, error)
}

// Completer produces a chat completion for a single prompt
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Renderer writes a receipt document to path
type Renderer interface {
	Render(receipt domain.Receipt, path string) error
}
