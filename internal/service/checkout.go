package service

import (
	"context"
	"errors"
	"fmt"

	"smartedybot/internal/domain"
	"smartedybot/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrUnknownTier is returned for callback payloads outside the fixed tiers
	ErrUnknownTier = errors.New("unknown checkout tier")
	// ErrNoCheckoutURL is returned when the provider answered without a URL
	ErrNoCheckoutURL = errors.New("checkout session has no url")
)

// CheckoutService creates payment sessions for checkout tiers
type CheckoutService struct {
	provider PaymentProvider
	journal  repository.CheckoutRepository
	logger   *zap.Logger
}

// NewCheckoutService creates a new checkout service.
// journal may be nil when no database is configured.
func NewCheckoutService(provider PaymentProvider, journal repository.CheckoutRepository, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		provider: provider,
		journal:  journal,
		logger:   logger,
	}
}

// CreateCheckout returns the hosted payment page URL for tier
func (s *CheckoutService) CreateCheckout(ctx context.Context, userID int64, tier domain.Tier) (string, error) {
	if !tier.Known() {
		return "", ErrUnknownTier
	}

	session, err := s.provider.CreateSession(ctx, userID, tier)
	if err != nil {
		return "", fmt.Errorf("create checkout session for tier %s: %w", tier, err)
	}
	if session.URL == "" {
		return "", ErrNoCheckoutURL
	}

	s.logger.Info("Checkout session created",
		zap.Int64("user_id", userID),
		zap.Stringer("tier", tier),
		zap.String("session_id", session.SessionID),
	)

	if s.journal != nil {
		session.UserID = userID
		session.Tier = tier
		if err := s.journal.SaveSession(session); err != nil {
			s.logger.Error("Failed to journal checkout session",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.String("session_id", session.SessionID),
			)
		}
	}

	return session.URL, nil
}
